package editmatches

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

// SetMatch creates or edits a match. Team names are stored by value and not
// checked against the teams collection: a match may be scheduled before its
// teams are formed, and keeps its names if a team is later deleted.
func SetMatch(ctx *Context) error {

	m := firestore.Match{
		DateTime: ctx.DateTime,
		Team1:    ctx.Team1,
		Team2:    ctx.Team2,
	}

	if ctx.DryRun {
		if ctx.ID == "" {
			log.Print("DRY RUN: would create the following match:")
		} else {
			log.Printf("DRY RUN: would merge the following fields onto match %s:", ctx.ID)
		}
		log.Printf("%s", m)
		return nil
	}

	ref, err := firestore.SetMatch(ctx, ctx.FirestoreClient, ctx.ID, m)
	if err != nil {
		return fmt.Errorf("SetMatch: error upserting match: %w", err)
	}
	log.Printf("set match %s", ref.ID)
	return nil
}
