package importapplicants

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	progressbar "github.com/schollz/progressbar/v3"
	"github.com/tealeg/xlsx"

	"github.com/dpsevent/eventreg/internal/firestore"
)

// Column layout of an import sheet. A header row is detected by a non-empty
// first cell equal to "name" (case-insensitive) and skipped.
const (
	colName = iota
	colContact
	colClass
	colRiotID
	colCurrentTier
	colPeakTier
	colStatus // optional; empty defaults to pending
	numCols
)

// Import bulk-loads applications from a spreadsheet, one applicant per row.
// Every row is validated before anything is written.
func Import(ctx *Context) error {

	reader, err := getFileOrGSReader(ctx, ctx.Input)
	if err != nil {
		return fmt.Errorf("Import: failed to open '%s': %w", ctx.Input, err)
	}
	defer reader.Close()

	slurp, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("Import: failed to read spreadsheet: %w", err)
	}
	xl, err := xlsx.OpenBinary(slurp)
	if err != nil {
		return fmt.Errorf("Import: failed to parse spreadsheet: %w", err)
	}
	if len(xl.Sheets) == 0 {
		return fmt.Errorf("Import: spreadsheet has no sheets")
	}
	sheet := xl.Sheets[0]

	applicants := make([]firestore.Applicant, 0, len(sheet.Rows))
	for irow, row := range sheet.Rows {
		a, skip, err := parseRow(row)
		if err != nil {
			return fmt.Errorf("Import: row %d: %w", irow+1, err)
		}
		if skip {
			continue
		}
		applicants = append(applicants, a)
	}
	if len(applicants) == 0 {
		return fmt.Errorf("Import: no applicant rows found in '%s'", ctx.Input)
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would add the following %d applicants:", len(applicants))
		for _, a := range applicants {
			log.Printf("%s", a)
		}
		return nil
	}

	bar := progressbar.NewOptions(len(applicants), progressbar.OptionSetVisibility(!ctx.NoProgress))
	for _, a := range applicants {
		ref, err := firestore.AddApplicant(ctx, ctx.FirestoreClient, a)
		if err != nil {
			return fmt.Errorf("Import: error adding applicant '%s': %w", a.Name, err)
		}
		bar.Add(1)
		log.Printf("added application %s for %s", ref.ID, a.Name)
	}
	return nil
}

func parseRow(row *xlsx.Row) (firestore.Applicant, bool, error) {
	var a firestore.Applicant

	cell := func(i int) string {
		if i >= len(row.Cells) {
			return ""
		}
		return strings.TrimSpace(row.Cells[i].Value)
	}

	// blank and header rows are skipped
	if cell(colName) == "" {
		return a, true, nil
	}
	if strings.EqualFold(cell(colName), "name") {
		return a, true, nil
	}

	if len(row.Cells) > numCols {
		return a, false, fmt.Errorf("too many columns: expected at most %d, got %d", numCols, len(row.Cells))
	}

	a.Name = cell(colName)
	a.Contact = cell(colContact)
	a.Class = cell(colClass)
	a.RiotID = cell(colRiotID)
	a.CurrentTier = cell(colCurrentTier)
	a.PeakTier = cell(colPeakTier)
	a.Status = cell(colStatus)

	if err := a.Validate(); err != nil {
		return a, false, err
	}
	return a, false, nil
}

func getFileOrGSReader(ctx context.Context, f string) (io.ReadCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		obj := bucket.Object(strings.Trim(u.Path, "/"))
		r, err = obj.NewReader(ctx)
		if err != nil {
			return nil, err
		}

	case "file":
		fallthrough
	case "":
		r, err = os.Open(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return r, nil
}
