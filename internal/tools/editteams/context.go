package editteams

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

// Context represents a set of options passed to the team commands.
type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client

	// Name and MemberIDs drive manual formation. An empty MemberIDs asks the
	// operator to pick members interactively.
	Name      string
	MemberIDs []string

	// Seed is an optional phrase seeding the automatic formation shuffle.
	Seed string

	// TeamNames are the targets of removal.
	TeamNames []string

	// KeepApplicants skips the post-delete applicant sweep. The removed teams'
	// members keep pointing at a team that no longer exists.
	KeepApplicants bool

	// NoProgress hides the progress bar during member sweeps.
	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
