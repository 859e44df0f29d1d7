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

const TEAMS_COLLECTION = "teams"

// TeamMember is a denormalized snapshot of an applicant at formation time.
// It is a copy, not a reference: rosters must survive applicant deletion.
type TeamMember struct {
	// Name is the member's full name.
	Name string `firestore:"name"`

	// RiotID is the member's in-game handle.
	RiotID string `firestore:"riotId"`

	// Grade is the member's grade at the time the team was formed. If the
	// applicant is regraded afterwards, this snapshot does not follow.
	Grade int `firestore:"grade"`
}

func (m TeamMember) String() string {
	return fmt.Sprintf("%s (%s, grade %d)", m.Name, m.RiotID, m.Grade)
}

// Team represents a formed team in the datastore. The document ID is the team
// name, so the name doubles as the primary key.
type Team struct {
	// Name is the team's unique name.
	Name string `firestore:"name"`

	// Members are the denormalized member snapshots, exactly five at creation.
	Members []TeamMember `firestore:"members"`
}

func (t Team) String() string {
	var sb strings.Builder
	sb.WriteString("Team\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("Name", 0, false, t.Name))
	for i, m := range t.Members {
		ss = append(ss, treeString(fmt.Sprintf("Member %d", i+1), 2, i == len(t.Members)-1, m.String()))
	}
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// GetTeams gets all teams in the datastore in name order.
func GetTeams(ctx context.Context, client *firestore.Client) ([]Team, []*firestore.DocumentRef, error) {
	iter := client.Collection(TEAMS_COLLECTION).OrderBy("name", firestore.Asc).Documents(ctx)
	teams := make([]Team, 0)
	refs := make([]*firestore.DocumentRef, 0)
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error getting team snapshot: %w", err)
		}
		var t Team
		err = ss.DataTo(&t)
		if err != nil {
			return nil, nil, fmt.Errorf("error getting team snapshot data: %w", err)
		}
		teams = append(teams, t)
		refs = append(refs, ss.Ref)
	}
	return teams, refs, nil
}

// GetTeam gets the team with the given name.
func GetTeam(ctx context.Context, client *firestore.Client, name string) (Team, *firestore.DocumentRef, error) {
	var t Team
	snap, err := client.Collection(TEAMS_COLLECTION).Doc(name).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return t, nil, TeamNotFound(fmt.Sprintf("no team with name \"%s\" defined", name))
	}
	if err != nil {
		return t, nil, err
	}
	if err = snap.DataTo(&t); err != nil {
		return t, nil, err
	}
	return t, snap.Ref, nil
}

// CreateTeam creates the team document keyed by the team name. Creating a team
// whose name is already taken fails with ConflictError rather than overwriting.
func CreateTeam(ctx context.Context, client *firestore.Client, t Team) (*firestore.DocumentRef, error) {
	if t.Name == "" {
		return nil, ValidationError{Field: "name", Message: "team name is required"}
	}
	ref := client.Collection(TEAMS_COLLECTION).Doc(t.Name)
	_, err := ref.Create(ctx, &t)
	if status.Code(err) == codes.AlreadyExists {
		return nil, ConflictError(fmt.Sprintf("team name \"%s\" is already in use", t.Name))
	}
	if err != nil {
		return nil, fmt.Errorf("error creating team: %w", err)
	}
	return ref, nil
}

// DeleteTeam removes the team document. Clearing the members' applicant records
// is the caller's responsibility; see the team removal tool for the sweep.
func DeleteTeam(ctx context.Context, client *firestore.Client, name string) error {
	_, ref, err := GetTeam(ctx, client, name)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx)
	return err
}
