package exportapplicants

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

// Context represents a set of options passed to the export command.
type Context struct {
	context.Context

	DryRun          bool
	FirestoreClient *fs.Client

	// Output is a file path or a gs:// location. Empty prints to console.
	Output string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
