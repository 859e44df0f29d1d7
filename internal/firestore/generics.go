package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
)

// GetAll gets all the documents from Firestore so long as they are all of the same type.
func GetAll[T Applicant | Team | Match](ctx context.Context, client *fs.Client, refs []*fs.DocumentRef) ([]T, error) {
	snaps, err := client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("GetAll: unable to get documents from client: %w", err)
	}
	return hydrateAll[T](snaps)
}

func hydrateAll[T Applicant | Team | Match](snaps []*fs.DocumentSnapshot) ([]T, error) {
	out := make([]T, len(snaps))

	for i, snap := range snaps {
		if !snap.Exists() {
			return nil, fmt.Errorf("GetAll: %w", notFound[T](snap.Ref.ID))
		}
		var val T
		err := snap.DataTo(&val)
		if err != nil {
			return nil, fmt.Errorf("GetAll: unable to create type %T from doc %v: %w", val, snap, err)
		}
		out[i] = val
	}

	return out, nil
}

func notFound[T Applicant | Team | Match](id string) error {
	var val T
	switch any(val).(type) {
	case Team:
		return TeamNotFound(fmt.Sprintf("no team with name \"%s\" defined", id))
	case Match:
		return MatchNotFound(fmt.Sprintf("no match with ID \"%s\" defined", id))
	default:
		return ApplicantNotFound(fmt.Sprintf("no application with ID \"%s\" defined", id))
	}
}
