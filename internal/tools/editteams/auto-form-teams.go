package editteams

import (
	"fmt"
	"log"
	"math/rand"

	progressbar "github.com/schollz/progressbar/v3"

	"github.com/dpsevent/eventreg/internal/firestore"
	"github.com/dpsevent/eventreg/internal/roster"
)

// AutoFormTeams partitions every ungrouped graded applicant into teams of
// roster.TeamSize by an unbiased shuffle and creates them under generated
// names. A failed team create, a name collision included, fails that one team
// and formation continues; the full success and failure breakdown is reported.
func AutoFormTeams(ctx *Context) error {

	applicants, refs, err := firestore.GetApplicants(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("AutoFormTeams: error getting applicants: %w", err)
	}

	eligible := roster.EligibleIndices(applicants)
	if len(eligible) < roster.TeamSize {
		return fmt.Errorf("AutoFormTeams: %w", roster.InsufficientApplicantsError{Eligible: len(eligible), Required: roster.TeamSize})
	}

	seed := roster.SeedFromString(ctx.Seed)
	log.Printf("shuffling %d eligible applicants with seed %d", len(eligible), seed)
	rng := rand.New(rand.NewSource(seed))
	groups := roster.Partition(eligible, rng)
	log.Printf("forming %d teams, %d applicants left ungrouped", len(groups), len(eligible)%roster.TeamSize)

	if ctx.DryRun {
		log.Print("DRY RUN: would create the following teams:")
		for i, group := range groups {
			team := makeTeam(roster.TeamName(i+1), group, applicants)
			log.Printf("%s", team)
		}
		return nil
	}

	pf := &firestore.PartialFailureError{Op: "AutoFormTeams"}
	formed := make([]string, 0, len(groups))
	bar := progressbar.NewOptions(len(groups)*roster.TeamSize, progressbar.OptionSetVisibility(!ctx.NoProgress))
	for i, group := range groups {
		name := roster.TeamName(i + 1)
		team := makeTeam(name, group, applicants)

		if _, err := firestore.CreateTeam(ctx, ctx.FirestoreClient, team); err != nil {
			// A failed create, whether a name collision with a manually
			// formed team or a store error, fails this partition as a unit.
			// Formation keeps going: the group's applicants stay ungrouped,
			// a later run can pick them up, and everything committed before
			// the failure stays in the aggregate.
			foldOutcome(pf, name, err)
			bar.Add(roster.TeamSize)
			continue
		}

		for _, idx := range group {
			id := refs[idx].ID
			foldOutcome(pf, fmt.Sprintf("%s/%s", name, id), firestore.SetApplicantTeam(ctx, ctx.FirestoreClient, id, name))
			bar.Add(1)
		}
		formed = append(formed, name)
	}

	for _, name := range formed {
		log.Printf("created team %s", name)
	}
	if len(pf.Failed) > 0 {
		return pf
	}
	return nil
}

func makeTeam(name string, group []int, applicants []firestore.Applicant) firestore.Team {
	members := make([]firestore.TeamMember, len(group))
	for i, idx := range group {
		a := applicants[idx]
		members[i] = firestore.TeamMember{Name: a.Name, RiotID: a.RiotID, Grade: a.Grade}
	}
	return firestore.Team{Name: name, Members: members}
}
