package editteams

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dpsevent/eventreg/internal/firestore"
)

func TestFormTeamMemberCount(t *testing.T) {
	ctx := NewContext(context.Background())
	ctx.Name = "Alpha"

	// A duplicated ID must not slip through as a sixth member.
	ctx.MemberIDs = []string{"a", "b", "c", "d", "e", "a"}
	err := FormTeam(ctx)
	var ve firestore.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for 6 member IDs, got %v", err)
	} else if ve.Field != "members" {
		t.Errorf("expected field \"members\", got \"%s\"", ve.Field)
	}

	ctx.MemberIDs = []string{"a", "b", "c", "d"}
	err = FormTeam(ctx)
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for 4 member IDs, got %v", err)
	}
}

func TestFormTeamDistinctMembers(t *testing.T) {
	ctx := NewContext(context.Background())
	ctx.Name = "Alpha"
	ctx.MemberIDs = []string{"a", "b", "c", "d", "a"}
	err := FormTeam(ctx)
	var ve firestore.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for duplicate member IDs, got %v", err)
	}
}

func TestFormTeamRequiresName(t *testing.T) {
	ctx := NewContext(context.Background())
	ctx.MemberIDs = []string{"a", "b", "c", "d", "e"}
	err := FormTeam(ctx)
	var ve firestore.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for missing name, got %v", err)
	} else if ve.Field != "name" {
		t.Errorf("expected field \"name\", got \"%s\"", ve.Field)
	}
}

func TestFoldOutcome(t *testing.T) {
	pf := &firestore.PartialFailureError{Op: "AutoFormTeams"}
	if !foldOutcome(pf, "Team 1/a", nil) {
		t.Error("expected success outcome for nil error")
	}
	foldOutcome(pf, "Team 1/b", nil)
	if foldOutcome(pf, "Team 2", fmt.Errorf("deadline exceeded")) {
		t.Error("expected failure outcome for non-nil error")
	}
	foldOutcome(pf, "Team 3/c", nil)

	if len(pf.Succeeded) != 3 {
		t.Errorf("expected 3 successes carried through a failure, got %d", len(pf.Succeeded))
	}
	if len(pf.Failed) != 1 {
		t.Errorf("expected 1 failure, got %d", len(pf.Failed))
	} else if pf.Failed[0].Key != "Team 2" {
		t.Errorf("expected failed key \"Team 2\", got \"%s\"", pf.Failed[0].Key)
	}
}
