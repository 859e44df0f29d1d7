package editapplicants

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/dpsevent/eventreg/internal/firestore"
)

// Context represents a set of options passed to the applicant commands.
type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client

	Applicants []firestore.Applicant
	IDs        []string
	ID         string
	Grade      int
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
