package editmatches

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func RmMatches(ctx *Context) error {

	// error checking
	toRm := make(map[string]firestore.Match)
	for _, id := range ctx.IDs {
		m, _, err := firestore.GetMatch(ctx, ctx.FirestoreClient, id)
		if err != nil {
			return fmt.Errorf("RmMatches: error looking up match '%s': %w", id, err)
		}
		toRm[id] = m
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following matches:")
		for id, m := range toRm {
			log.Printf("%s: %s", id, m)
		}
		return nil
	}

	if !ctx.Force {
		return fmt.Errorf("RmMatches: removal of matches is dangerous: use force flag to force removal")
	}

	for id := range toRm {
		if err := firestore.DeleteMatch(ctx, ctx.FirestoreClient, id); err != nil {
			return fmt.Errorf("RmMatches: error deleting match '%s': %w", id, err)
		}
		log.Printf("deleted match %s", id)
	}
	return nil
}
