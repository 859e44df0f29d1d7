package editmatches

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func LsMatches(ctx *Context) error {

	matches, refs, err := firestore.GetMatches(ctx.Context, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("LsMatches: error getting matches: %w", err)
	}
	if len(matches) == 0 {
		log.Print("no matches scheduled")
		return nil
	}
	for i, match := range matches {
		fmt.Printf("%s: %s\n", refs[i].Path, match)
	}
	return nil
}
