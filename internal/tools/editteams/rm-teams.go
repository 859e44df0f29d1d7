package editteams

import (
	"fmt"
	"log"

	"github.com/dpsevent/eventreg/internal/firestore"
)

// RmTeams deletes teams and sweeps the applicant collection to clear the team
// field of every member of a deleted team. The team document delete is
// sequenced first; the sweep then awaits and aggregates every unassignment
// outcome. With KeepApplicants the sweep is skipped and the members keep a
// reference to a team that no longer exists.
func RmTeams(ctx *Context) error {

	// error checking
	toRm := make([]string, 0, len(ctx.TeamNames))
	for _, name := range ctx.TeamNames {
		_, _, err := firestore.GetTeam(ctx, ctx.FirestoreClient, name)
		if err != nil {
			return fmt.Errorf("RmTeams: error looking up team '%s': %w", name, err)
		}
		toRm = append(toRm, name)
	}

	applicants, refs, err := firestore.GetApplicants(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("RmTeams: error getting applicants: %w", err)
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following teams:")
		for _, name := range toRm {
			log.Print(name)
		}
		if !ctx.KeepApplicants {
			log.Print("DRY RUN: would unassign the following applicants:")
			for i, a := range applicants {
				for _, name := range toRm {
					if a.Team == name {
						log.Printf("%s (%s)", refs[i].ID, a.Name)
					}
				}
			}
		}
		return nil
	}

	if !ctx.Force {
		return fmt.Errorf("RmTeams: removal of teams is dangerous: use force flag to force removal")
	}

	pf := &firestore.PartialFailureError{Op: "RmTeams"}
	for _, name := range toRm {
		if err := firestore.DeleteTeam(ctx, ctx.FirestoreClient, name); err != nil {
			pf.Failed = append(pf.Failed, firestore.FailedWrite{Key: name, Err: err})
			continue
		}
		pf.Succeeded = append(pf.Succeeded, name)
		log.Printf("deleted team %s", name)

		if ctx.KeepApplicants {
			log.Printf("WARNING: applicants assigned to %s keep a dangling team reference", name)
			continue
		}
		for i, a := range applicants {
			if a.Team != name {
				continue
			}
			id := refs[i].ID
			if err := firestore.ClearApplicantTeam(ctx, ctx.FirestoreClient, id); err != nil {
				pf.Failed = append(pf.Failed, firestore.FailedWrite{Key: fmt.Sprintf("%s/%s", name, id), Err: err})
				continue
			}
			pf.Succeeded = append(pf.Succeeded, fmt.Sprintf("%s/%s", name, id))
			log.Printf("unassigned %s (%s)", id, a.Name)
		}
	}

	if len(pf.Failed) > 0 {
		return pf
	}
	return nil
}
