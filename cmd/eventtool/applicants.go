package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/dpsevent/eventreg/internal/firestore"
	"github.com/dpsevent/eventreg/internal/tools/applicantstats"
	"github.com/dpsevent/eventreg/internal/tools/editapplicants"
	"github.com/dpsevent/eventreg/internal/tools/exportapplicants"
	"github.com/dpsevent/eventreg/internal/tools/importapplicants"
)

type addApplicantsCmd struct {
	DryRun     bool                  `help:"Print database writes to log and exit without writing."`
	Applicants []firestore.Applicant `arg:"" help:"Applicants to add. Must be strings in Name:Contact:Class:RiotID:CurrentTier:PeakTier format." required:""`
}

func (a *addApplicantsCmd) Run(g *globalCmd) error {
	ctx := editapplicants.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Applicants = a.Applicants
	return editapplicants.AddApplicants(ctx)
}

type lsApplicantsCmd struct{}

func (a *lsApplicantsCmd) Run(g *globalCmd) error {
	ctx := editapplicants.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return editapplicants.LsApplicants(ctx)
}

type gradeApplicantCmd struct {
	DryRun bool   `help:"Print database writes to log and exit without writing."`
	ID     string `arg:"" help:"Database ID of applicant to grade." required:""`
	Grade  int    `arg:"" help:"Grade to assign, an integer in [1, 5]." required:""`
}

func (a *gradeApplicantCmd) Run(g *globalCmd) error {
	ctx := editapplicants.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.ID = a.ID
	ctx.Grade = a.Grade
	return editapplicants.GradeApplicant(ctx)
}

type rmApplicantsCmd struct {
	Force  bool     `help:"Force deleting data in database." xor:"Force,DryRun"`
	DryRun bool     `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	IDs    []string `arg:"" help:"Database IDs of applicants to remove." required:""`
}

func (a *rmApplicantsCmd) Run(g *globalCmd) error {
	ctx := editapplicants.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.IDs = a.IDs
	return editapplicants.RmApplicants(ctx)
}

type importApplicantsCmd struct {
	DryRun     bool   `help:"Print database writes to log and exit without writing."`
	NoProgress bool   `help:"Do not display a progress bar."`
	Input      string `arg:"" help:"Spreadsheet to load. A Google Cloud Storage location can be specified with a gs:// prefix." required:""`
}

func (a *importApplicantsCmd) Run(g *globalCmd) error {
	ctx := importapplicants.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.NoProgress = a.NoProgress
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Input = a.Input
	return importapplicants.Import(ctx)
}

type exportApplicantsCmd struct {
	DryRun bool   `help:"Print rows to console instead of writing."`
	Output string `short:"o" help:"The location where the workbook will be written. If not given, prints rows to console. A Google Cloud Storage location can be specified with a gs:// prefix."`
}

func (a *exportApplicantsCmd) Run(g *globalCmd) error {
	ctx := exportapplicants.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Output = a.Output
	return exportapplicants.Export(ctx)
}

type statsCmd struct{}

func (a *statsCmd) Run(g *globalCmd) error {
	ctx := applicantstats.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return applicantstats.Stats(ctx)
}
