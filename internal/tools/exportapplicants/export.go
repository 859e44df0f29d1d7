package exportapplicants

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	fs "cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	excelize "github.com/xuri/excelize/v2"

	"github.com/dpsevent/eventreg/internal/firestore"
)

// Export writes the applicant table to an Excel workbook at a file or Google
// Cloud Storage location. Without an output location the rows print to console.
func Export(ctx *Context) error {

	applicants, refs, err := firestore.GetApplicants(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("Export: error getting applicants: %w", err)
	}

	xl, err := makeApplicantsExcelFile(applicants, refs)
	if err != nil {
		return fmt.Errorf("Export: error building workbook: %w", err)
	}

	if ctx.Output == "" || ctx.DryRun {
		sheetName := xl.GetSheetName(xl.GetActiveSheetIndex())
		rows, err := xl.Rows(sheetName)
		if err != nil {
			return fmt.Errorf("Export: error getting row iterator: %w", err)
		}
		for rows.Next() {
			row, err := rows.Columns()
			if err != nil {
				return fmt.Errorf("Export: error getting cells from row iterator: %w", err)
			}
			fmt.Println(strings.Join(row, ", "))
		}
		return nil
	}

	writer, err := openFileOrGSWriter(ctx, ctx.Output)
	if err != nil {
		return fmt.Errorf("Export: error opening '%s': %w", ctx.Output, err)
	}
	defer writer.Close()

	if _, err = xl.WriteTo(writer); err != nil {
		return fmt.Errorf("Export: error writing workbook: %w", err)
	}
	return nil
}

var exportHeader = []string{"ID", "Name", "Contact", "Class", "Riot ID", "Current Tier", "Peak Tier", "Submitted", "Status", "Grade", "Team"}

func makeApplicantsExcelFile(applicants []firestore.Applicant, refs []*fs.DocumentRef) (*excelize.File, error) {
	outExcel := excelize.NewFile()
	sheetName := outExcel.GetSheetName(outExcel.GetActiveSheetIndex())

	for col, h := range exportHeader {
		index, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		outExcel.SetCellStr(sheetName, index, h)
	}

	for i, a := range applicants {
		grade := ""
		if firestore.ValidGrade(a.Grade) {
			grade = strconv.Itoa(a.Grade)
		}
		cells := []string{
			refs[i].ID,
			a.Name,
			a.Contact,
			a.Class,
			a.RiotID,
			a.CurrentTier,
			a.PeakTier,
			a.Created.Format("2006-01-02"),
			a.Status,
			grade,
			a.Team,
		}
		for col, str := range cells {
			index, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			outExcel.SetCellStr(sheetName, index, str)
		}
	}
	return outExcel, nil
}

func openFileOrGSWriter(ctx context.Context, f string) (io.WriteCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		// URL path has leading slash, but GS expects path relative to bucket.
		path := strings.TrimPrefix(u.Path, "/")
		obj := bucket.Object(path)
		w = obj.NewWriter(ctx)

	case "file":
		fallthrough
	case "":
		w, err = os.Create(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return w, nil
}
