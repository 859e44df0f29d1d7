package applicantstats

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dpsevent/eventreg/internal/firestore"
	"github.com/dpsevent/eventreg/internal/stats"
)

// Stats prints the applicant distributions the admin dashboard charts from.
func Stats(ctx *Context) error {

	applicants, _, err := firestore.GetApplicants(ctx.Context, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("Stats: error getting applicants: %w", err)
	}
	if len(applicants) == 0 {
		log.Print("no applications submitted")
		return nil
	}

	summary := stats.Aggregate(applicants)
	fmt.Printf("%d applications\n", summary.Total)

	renderCounts("Class", summary.ByClass)
	renderCounts("Current Tier", summary.ByCurrentTier)
	renderCounts("Peak Tier", summary.ByPeakTier)

	gradeTable := table.NewWriter()
	gradeTable.SetOutputMirror(os.Stdout)
	gradeTable.AppendHeader(table.Row{"Grade", "Count"})
	for _, g := range stats.SortedKeys(summary.ByGrade) {
		gradeTable.AppendRow(table.Row{g, summary.ByGrade[g]})
	}
	gs := stats.Grades(applicants)
	gradeTable.AppendFooter(table.Row{"graded", gs.Graded})
	gradeTable.AppendFooter(table.Row{"mean", fmt.Sprintf("%0.2f", gs.Mean)})
	gradeTable.AppendFooter(table.Row{"stddev", fmt.Sprintf("%0.2f", gs.StdDev)})
	gradeTable.Render()

	return nil
}

func renderCounts(header string, counts map[string]int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{header, "Count"})
	for _, k := range stats.SortedKeys(counts) {
		t.AppendRow(table.Row{k, counts[k]})
	}
	t.Render()
}
