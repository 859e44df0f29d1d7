package editterms

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

// GetTerms prints the agreement sections shown to applicants before the form.
func GetTerms(ctx *Context) error {

	agreement, err := firestore.GetAgreement(ctx.Context, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("GetTerms: error getting agreement: %w", err)
	}
	fmt.Printf("== check ==\n%s\n", agreement.Check)
	fmt.Printf("== conditions ==\n%s\n", agreement.Conditions)
	fmt.Printf("== coc ==\n%s\n", agreement.CodeOfConduct)
	fmt.Printf("== privacy ==\n%s\n", agreement.Privacy)
	return nil
}

// SetTerms merges the supplied sections onto the agreement singleton, leaving
// the others as they are.
func SetTerms(ctx *Context) error {

	sections := make(map[string]interface{})
	if ctx.Check != "" {
		sections["check"] = ctx.Check
	}
	if ctx.Conditions != "" {
		sections["conditions"] = ctx.Conditions
	}
	if ctx.CodeOfConduct != "" {
		sections["coc"] = ctx.CodeOfConduct
	}
	if ctx.Privacy != "" {
		sections["privacy"] = ctx.Privacy
	}
	if len(sections) == 0 {
		return fmt.Errorf("SetTerms: at least one section to set must be specified")
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would merge the following sections:")
		for name := range sections {
			log.Print(name)
		}
		return nil
	}

	if err := firestore.MergeAgreement(ctx, ctx.FirestoreClient, sections); err != nil {
		return fmt.Errorf("SetTerms: error merging agreement: %w", err)
	}
	log.Printf("merged %d agreement sections", len(sections))
	return nil
}
