package editteams

import (
	"fmt"
	"log"
	"sort"
	"strings"

	fs "cloud.google.com/go/firestore"
	"github.com/AlecAivazis/survey/v2"

	"github.com/dpsevent/eventreg/internal/firestore"
	"github.com/dpsevent/eventreg/internal/roster"
)

// FormTeam creates a team from an explicit member selection. Member IDs are
// re-resolved against the current applicant collection, never trusted from a
// stale snapshot: every member must hold a grade and no team at formation time.
func FormTeam(ctx *Context) error {

	if ctx.Name == "" {
		return fmt.Errorf("FormTeam: %w", firestore.ValidationError{Field: "name", Message: "team name is required"})
	}

	memberIDs := ctx.MemberIDs
	if len(memberIDs) == 0 {
		applicants, refs, err := firestore.GetApplicants(ctx, ctx.FirestoreClient)
		if err != nil {
			return fmt.Errorf("FormTeam: error getting applicants: %w", err)
		}
		memberIDs, err = surveyMembers(applicants, refs)
		if err != nil {
			return fmt.Errorf("FormTeam: error picking members: %w", err)
		}
	}

	// error checking
	if len(memberIDs) != roster.TeamSize {
		return fmt.Errorf("FormTeam: %w", firestore.ValidationError{
			Field:   "members",
			Message: fmt.Sprintf("exactly %d member IDs required, got %d", roster.TeamSize, len(memberIDs)),
		})
	}
	distinct := make(map[string]struct{})
	for _, id := range memberIDs {
		distinct[id] = struct{}{}
	}
	if len(distinct) != roster.TeamSize {
		return fmt.Errorf("FormTeam: %w", firestore.ValidationError{
			Field:   "members",
			Message: fmt.Sprintf("member IDs must be distinct, got %d distinct of %d", len(distinct), len(memberIDs)),
		})
	}

	col := ctx.FirestoreClient.Collection(firestore.APPLICATIONS_COLLECTION)
	refs := make([]*fs.DocumentRef, len(memberIDs))
	for i, id := range memberIDs {
		refs[i] = col.Doc(id)
	}
	selected, err := firestore.GetAll[firestore.Applicant](ctx, ctx.FirestoreClient, refs)
	if err != nil {
		return fmt.Errorf("FormTeam: error resolving members: %w", err)
	}

	members := make([]firestore.TeamMember, 0, roster.TeamSize)
	for i, a := range selected {
		if !roster.Eligible(a) {
			return fmt.Errorf("FormTeam: %w", firestore.ValidationError{
				Field:   "members",
				Message: fmt.Sprintf("applicant %s (%s) is not eligible: grade %d, team \"%s\"", memberIDs[i], a.Name, a.Grade, a.Team),
			})
		}
		members = append(members, firestore.TeamMember{Name: a.Name, RiotID: a.RiotID, Grade: a.Grade})
	}

	team := firestore.Team{Name: ctx.Name, Members: members}

	if ctx.DryRun {
		log.Print("DRY RUN: would create the following team:")
		log.Printf("%s", team)
		return nil
	}

	// The team document must exist before any applicant points at it, so the
	// create is sequenced first and the member merges follow.
	if _, err := firestore.CreateTeam(ctx, ctx.FirestoreClient, team); err != nil {
		return fmt.Errorf("FormTeam: error creating team: %w", err)
	}
	log.Printf("created team %s", ctx.Name)

	return assignMembers(ctx, "FormTeam", ctx.Name, memberIDs)
}

// assignMembers merges the team name onto each member's application, awaiting
// every write and aggregating the outcomes. A partial failure is surfaced as
// such, never collapsed into a generic error.
func assignMembers(ctx *Context, op string, team string, memberIDs []string) error {
	pf := &firestore.PartialFailureError{Op: op}
	for _, id := range memberIDs {
		foldOutcome(pf, fmt.Sprintf("%s/%s", team, id), firestore.SetApplicantTeam(ctx, ctx.FirestoreClient, id, team))
	}
	if len(pf.Failed) > 0 {
		return pf
	}
	return nil
}

// foldOutcome files one write result into the aggregate, keeping every
// outcome recorded so far, and reports whether the write succeeded.
func foldOutcome(pf *firestore.PartialFailureError, key string, err error) bool {
	if err != nil {
		pf.Failed = append(pf.Failed, firestore.FailedWrite{Key: key, Err: err})
		return false
	}
	pf.Succeeded = append(pf.Succeeded, key)
	return true
}

func surveyMembers(applicants []firestore.Applicant, refs []*fs.DocumentRef) ([]string, error) {
	options := make([]string, 0)
	idsByOption := make(map[string]string)
	for i, a := range applicants {
		if !roster.Eligible(a) {
			continue
		}
		opt := fmt.Sprintf("(%s) %s, %s, grade %d", refs[i].ID, a.Name, a.RiotID, a.Grade)
		options = append(options, opt)
		idsByOption[opt] = refs[i].ID
	}
	sort.Strings(options)
	if len(options) < roster.TeamSize {
		return nil, roster.InsufficientApplicantsError{Eligible: len(options), Required: roster.TeamSize}
	}

	q := &survey.MultiSelect{
		Message: fmt.Sprintf("Pick exactly %d members:", roster.TeamSize),
		Options: options,
	}
	var picked []string
	err := survey.AskOne(q, &picked, survey.WithRemoveSelectNone(), survey.WithValidator(survey.MinItems(roster.TeamSize)), survey.WithValidator(survey.MaxItems(roster.TeamSize)))
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(picked))
	for i, opt := range picked {
		id, ok := idsByOption[opt]
		if !ok {
			return nil, fmt.Errorf("unrecognized selection \"%s\"", strings.TrimSpace(opt))
		}
		ids[i] = id
	}
	return ids, nil
}
