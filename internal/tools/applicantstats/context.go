package applicantstats

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

// Context represents a set of options passed to the stats command.
type Context struct {
	context.Context

	FirestoreClient *fs.Client
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
