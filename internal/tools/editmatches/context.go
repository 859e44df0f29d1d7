package editmatches

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

// Context represents a set of options passed to the match commands.
type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client

	// ID selects the match to merge onto; empty means create a new match.
	ID       string
	DateTime string
	Team1    string
	Team2    string

	IDs []string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
