package importapplicants

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

// Context represents a set of options passed to the import command.
type Context struct {
	context.Context

	DryRun          bool
	FirestoreClient *fs.Client

	// Input is a file path or a gs:// location of the spreadsheet to load.
	Input string

	// NoProgress hides the progress bar during the writes.
	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
