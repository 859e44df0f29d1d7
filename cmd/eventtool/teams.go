package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/dpsevent/eventreg/internal/tools/editteams"
)

type formTeamCmd struct {
	DryRun  bool     `help:"Print database writes to log and exit without writing."`
	Name    string   `arg:"" help:"Name of the team to form." required:""`
	Members []string `arg:"" optional:"" help:"Database IDs of exactly five graded, unassigned applicants. If not given, members are picked interactively."`
}

func (a *formTeamCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Name = a.Name
	ctx.MemberIDs = a.Members
	return editteams.FormTeam(ctx)
}

type autoFormTeamsCmd struct {
	DryRun     bool   `help:"Print database writes to log and exit without writing."`
	NoProgress bool   `help:"Do not display a progress bar."`
	Seed       string `help:"Seed phrase for the shuffle, for reproducible runs. If not given, the shuffle is seeded from the clock."`
}

func (a *autoFormTeamsCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.NoProgress = a.NoProgress
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Seed = a.Seed
	return editteams.AutoFormTeams(ctx)
}

type lsTeamsCmd struct{}

func (a *lsTeamsCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return editteams.LsTeams(ctx)
}

type rmTeamsCmd struct {
	Force          bool     `help:"Force deleting data in database." xor:"Force,DryRun"`
	DryRun         bool     `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	KeepApplicants bool     `help:"Do not unassign members of removed teams. WARNING: Specifying this option will leave undefined references in the database!"`
	Teams          []string `arg:"" help:"Names of teams to remove." required:""`
}

func (a *rmTeamsCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	ctx.KeepApplicants = a.KeepApplicants
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.TeamNames = a.Teams
	return editteams.RmTeams(ctx)
}
