package firestore

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const MATCHES_COLLECTION = "matches"

// Match represents a scheduled contest between two teams. Teams are referenced
// by name value only: there is no referential integrity against the teams
// collection, and deleting a team leaves its matches untouched.
type Match struct {
	// DateTime is an ISO-ish datetime string. Empty means unscheduled.
	DateTime string `firestore:"matchDateTime"`

	// Team1 and Team2 are team names. Empty means the slot is still TBD.
	Team1 string `firestore:"team1"`
	Team2 string `firestore:"team2"`
}

func (m Match) String() string {
	var sb strings.Builder
	sb.WriteString("Match\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("Team1", 0, false, orTBD(m.Team1)))
	ss = append(ss, treeString("Team2", 0, false, orTBD(m.Team2)))
	dt := m.DateTime
	if dt == "" {
		dt = "unscheduled"
	}
	ss = append(ss, treeString("DateTime", 0, true, dt))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

func orTBD(name string) string {
	if name == "" {
		return "TBD"
	}
	return name
}

// GetMatches gets all matches in the datastore in schedule order.
func GetMatches(ctx context.Context, client *firestore.Client) ([]Match, []*firestore.DocumentRef, error) {
	iter := client.Collection(MATCHES_COLLECTION).OrderBy("matchDateTime", firestore.Asc).Documents(ctx)
	matches := make([]Match, 0)
	refs := make([]*firestore.DocumentRef, 0)
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error getting match snapshot: %w", err)
		}
		var m Match
		err = ss.DataTo(&m)
		if err != nil {
			return nil, nil, fmt.Errorf("error getting match snapshot data: %w", err)
		}
		matches = append(matches, m)
		refs = append(refs, ss.Ref)
	}
	return matches, refs, nil
}

// GetMatch gets the match with the given document ID.
func GetMatch(ctx context.Context, client *firestore.Client, id string) (Match, *firestore.DocumentRef, error) {
	var m Match
	snap, err := client.Collection(MATCHES_COLLECTION).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return m, nil, MatchNotFound(fmt.Sprintf("no match with ID \"%s\" defined", id))
	}
	if err != nil {
		return m, nil, err
	}
	if err = snap.DataTo(&m); err != nil {
		return m, nil, err
	}
	return m, snap.Ref, nil
}

// SetMatch upserts a match. With an empty id a new document is created with a
// generated ID and every field written, empty or not, so ordered reads see it.
// With an id given, only the supplied (non-empty) fields are merged onto the
// document, creating it if absent; a merge that creates seeds matchDateTime as
// well, so schedule-ordered reads see the new document.
func SetMatch(ctx context.Context, client *firestore.Client, id string, m Match) (*firestore.DocumentRef, error) {
	col := client.Collection(MATCHES_COLLECTION)
	if id == "" {
		ref := col.NewDoc()
		_, err := ref.Create(ctx, &m)
		if err != nil {
			return nil, fmt.Errorf("error creating match: %w", err)
		}
		return ref, nil
	}

	merge := mergeFields(m)
	if len(merge) == 0 {
		return nil, ValidationError{Field: "match", Message: "at least one field to set must be specified"}
	}
	ref := col.Doc(id)
	_, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		seedScheduleField(merge)
	} else if err != nil {
		return nil, fmt.Errorf("error getting match: %w", err)
	}
	_, err = ref.Set(ctx, merge, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("error merging match: %w", err)
	}
	return ref, nil
}

// mergeFields builds the merge document from the supplied (non-empty) fields.
func mergeFields(m Match) map[string]interface{} {
	merge := make(map[string]interface{})
	if m.DateTime != "" {
		merge["matchDateTime"] = m.DateTime
	}
	if m.Team1 != "" {
		merge["team1"] = m.Team1
	}
	if m.Team2 != "" {
		merge["team2"] = m.Team2
	}
	return merge
}

// seedScheduleField adds an empty matchDateTime to a merge document destined
// for a document that does not exist yet. GetMatches orders by matchDateTime,
// and Firestore drops documents missing the ordering field from the results.
func seedScheduleField(merge map[string]interface{}) {
	if _, ok := merge["matchDateTime"]; !ok {
		merge["matchDateTime"] = ""
	}
}

// DeleteMatch removes the match document.
func DeleteMatch(ctx context.Context, client *firestore.Client, id string) error {
	_, ref, err := GetMatch(ctx, client, id)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx)
	return err
}
