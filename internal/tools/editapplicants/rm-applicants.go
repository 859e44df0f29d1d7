package editapplicants

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func RmApplicants(ctx *Context) error {

	// error checking
	toRm := make(map[string]firestore.Applicant)
	for _, id := range ctx.IDs {
		a, _, err := firestore.GetApplicant(ctx, ctx.FirestoreClient, id)
		if err != nil {
			return fmt.Errorf("RmApplicants: error looking up applicant '%s': %w", id, err)
		}
		toRm[id] = a
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following applications:")
		for id, a := range toRm {
			log.Printf("%s: %s", id, a)
		}
		return nil
	}

	if !ctx.Force {
		return fmt.Errorf("RmApplicants: removal of applications is dangerous: use force flag to force removal")
	}

	// Team rosters are left alone: members are denormalized snapshots, so a
	// deleted applicant still appears on the team they were placed on.
	for id := range toRm {
		if err := firestore.DeleteApplicant(ctx, ctx.FirestoreClient, id); err != nil {
			return fmt.Errorf("RmApplicants: error deleting application '%s': %w", id, err)
		}
		log.Printf("deleted application %s", id)
	}
	return nil
}
