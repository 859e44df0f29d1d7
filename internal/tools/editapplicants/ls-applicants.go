package editapplicants

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func LsApplicants(ctx *Context) error {

	applicants, refs, err := firestore.GetApplicants(ctx.Context, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("LsApplicants: error getting applicants: %w", err)
	}
	if len(applicants) == 0 {
		log.Print("no applications submitted")
		return nil
	}
	for i, applicant := range applicants {
		fmt.Printf("%s: %s\n", refs[i].Path, applicant)
	}
	return nil
}
