package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/dpsevent/eventreg/internal/tools/editterms"
)

type getTermsCmd struct{}

func (a *getTermsCmd) Run(g *globalCmd) error {
	ctx := editterms.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return editterms.GetTerms(ctx)
}

type setTermsCmd struct {
	DryRun        bool   `help:"Print database writes to log and exit without writing."`
	Check         string `help:"New text of the check section."`
	Conditions    string `help:"New text of the conditions section."`
	CodeOfConduct string `name:"coc" help:"New text of the code-of-conduct section."`
	Privacy       string `help:"New text of the privacy section."`
}

func (a *setTermsCmd) Run(g *globalCmd) error {
	ctx := editterms.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Check = a.Check
	ctx.Conditions = a.Conditions
	ctx.CodeOfConduct = a.CodeOfConduct
	ctx.Privacy = a.Privacy
	return editterms.SetTerms(ctx)
}
