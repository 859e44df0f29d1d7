package main

import (
	"github.com/alecthomas/kong"
)

type globalCmd struct {
	ProjectID string `help:"GCP project ID." env:"GCP_PROJECT" required:""`
}

var CLI struct {
	globalCmd

	Applicants struct {
		Add    addApplicantsCmd    `cmd:"" help:"Add applicants."`
		Ls     lsApplicantsCmd     `cmd:"" help:"List all applicants."`
		Grade  gradeApplicantCmd   `cmd:"" help:"Grade an applicant."`
		Rm     rmApplicantsCmd     `cmd:"" help:"Remove applicants."`
		Import importApplicantsCmd `cmd:"" help:"Bulk-load applicants from a spreadsheet."`
		Export exportApplicantsCmd `cmd:"" help:"Export applicants to an Excel workbook."`
		Stats  statsCmd            `cmd:"" help:"Print applicant distributions."`
	} `cmd:""`

	Teams struct {
		Form formTeamCmd      `cmd:"" help:"Form a team from five graded applicants."`
		Auto autoFormTeamsCmd `cmd:"" help:"Randomly partition eligible applicants into teams of five."`
		Ls   lsTeamsCmd       `cmd:"" help:"List all teams."`
		Rm   rmTeamsCmd       `cmd:"" help:"Remove teams and unassign their members."`
	} `cmd:""`

	Matches struct {
		Set setMatchCmd  `cmd:"" help:"Create or edit a match."`
		Ls  lsMatchesCmd `cmd:"" help:"List all matches in schedule order."`
		Rm  rmMatchesCmd `cmd:"" help:"Remove matches."`
	} `cmd:""`

	Terms struct {
		Get getTermsCmd `cmd:"" help:"Print the agreement sections."`
		Set setTermsCmd `cmd:"" help:"Edit agreement sections."`
	} `cmd:""`
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
