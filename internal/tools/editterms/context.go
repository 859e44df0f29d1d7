package editterms

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

// Context represents a set of options passed to the terms commands.
type Context struct {
	context.Context

	DryRun          bool
	FirestoreClient *fs.Client

	// Section texts to merge; an empty string leaves the stored section alone.
	Check         string
	Conditions    string
	CodeOfConduct string
	Privacy       string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
