package editapplicants

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func GradeApplicant(ctx *Context) error {

	if !firestore.ValidGrade(ctx.Grade) {
		return fmt.Errorf("GradeApplicant: %w", firestore.ValidationError{
			Field:   "grade",
			Message: fmt.Sprintf("grade must be an integer in [%d, %d], got %d", firestore.MinGrade, firestore.MaxGrade, ctx.Grade),
		})
	}

	applicant, _, err := firestore.GetApplicant(ctx, ctx.FirestoreClient, ctx.ID)
	if err != nil {
		return fmt.Errorf("GradeApplicant: error looking up applicant '%s': %w", ctx.ID, err)
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would set grade of %s (%s) to %d", ctx.ID, applicant.Name, ctx.Grade)
		return nil
	}

	if err := firestore.SetApplicantGrade(ctx, ctx.FirestoreClient, ctx.ID, ctx.Grade); err != nil {
		return fmt.Errorf("GradeApplicant: error setting grade: %w", err)
	}
	log.Printf("graded %s (%s): %d", ctx.ID, applicant.Name, ctx.Grade)
	return nil
}
