package editteams

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func LsTeams(ctx *Context) error {

	teams, refs, err := firestore.GetTeams(ctx.Context, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("LsTeams: error getting teams: %w", err)
	}
	if len(teams) == 0 {
		log.Print("no teams formed")
		return nil
	}
	for i, team := range teams {
		fmt.Printf("%s: %s\n", refs[i].Path, team)
	}
	return nil
}
