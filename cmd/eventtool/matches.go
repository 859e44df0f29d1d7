package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/dpsevent/eventreg/internal/tools/editmatches"
)

type setMatchCmd struct {
	DryRun   bool   `help:"Print database writes to log and exit without writing."`
	ID       string `help:"Database ID of match to edit. If not given, a new match is created."`
	DateTime string `help:"Match date and time as an ISO datetime string."`
	Team1    string `help:"Name of the first team. Left TBD if not given."`
	Team2    string `help:"Name of the second team. Left TBD if not given."`
}

func (a *setMatchCmd) Run(g *globalCmd) error {
	ctx := editmatches.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.ID = a.ID
	ctx.DateTime = a.DateTime
	ctx.Team1 = a.Team1
	ctx.Team2 = a.Team2
	return editmatches.SetMatch(ctx)
}

type lsMatchesCmd struct{}

func (a *lsMatchesCmd) Run(g *globalCmd) error {
	ctx := editmatches.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return editmatches.LsMatches(ctx)
}

type rmMatchesCmd struct {
	Force  bool     `help:"Force deleting data in database." xor:"Force,DryRun"`
	DryRun bool     `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	IDs    []string `arg:"" help:"Database IDs of matches to remove." required:""`
}

func (a *rmMatchesCmd) Run(g *globalCmd) error {
	ctx := editmatches.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.IDs = a.IDs
	return editmatches.RmMatches(ctx)
}
