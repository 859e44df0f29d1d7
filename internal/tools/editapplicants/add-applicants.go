package editapplicants

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func AddApplicants(ctx *Context) error {

	// error checking before anything is written
	for _, applicant := range ctx.Applicants {
		if err := applicant.Validate(); err != nil {
			return fmt.Errorf("AddApplicants: invalid applicant '%s': %w", applicant.Name, err)
		}
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would add the following applicants:")
		for _, applicant := range ctx.Applicants {
			log.Printf("%s", applicant)
		}
		return nil
	}

	for _, applicant := range ctx.Applicants {
		ref, err := firestore.AddApplicant(ctx, ctx.FirestoreClient, applicant)
		if err != nil {
			return fmt.Errorf("AddApplicants: error adding applicant '%s': %w", applicant.Name, err)
		}
		log.Printf("added application %s for %s", ref.ID, applicant.Name)
	}
	return nil
}
