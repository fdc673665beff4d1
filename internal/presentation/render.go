package presentation

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes the view as plain text tables, one section per dashboard widget.
func Render(w io.Writer, v *View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Placement Dashboard %s\n", v.AcademicYear)
	if v.LastUpdated != "" {
		fmt.Fprintf(tw, "Last updated: %s\n", v.LastUpdated)
	}

	section(tw, "Key Metrics")
	for _, m := range v.KeyMetrics {
		fmt.Fprintf(tw, "%s\t%s\n", m.Label, m.Value)
	}

	section(tw, "Yearly Placement Percentage Trend")
	fmt.Fprintln(tw, "Year\tApplications\tSelected\tPlacement %")
	for _, p := range v.PlacementTrends {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f\n", p.Year, p.Applications, p.Selected, p.PlacementRate)
	}

	series(tw, "Branch-wise Placement Comparison", "Branch", "Placement %", v.BranchComparison, "%.2f")
	series(tw, "Industry-wise Placement Distribution", "Industry", "Selected", v.IndustryDonut, "%.0f")
	series(tw, "Package Distribution", "Salary Range", "Jobs", v.Packages, "%.0f")
	series(tw, "Job Type Distribution", "Job Type", "Jobs", v.JobTypes, "%.0f")

	section(tw, "Top Recruiting Companies")
	if len(v.TopCompanies) == 0 {
		fmt.Fprintln(tw, "No company data available.")
	} else {
		fmt.Fprintln(tw, "Company\tTotal Offers\tAverage Package (LPA)\tHighest Package (LPA)\tIndustry")
		for _, c := range v.TopCompanies {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", c.Company, c.TotalOffers, c.AvgPackage, c.MaxPackage, c.Industry)
		}
	}

	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func series(w io.Writer, title, category, value string, points []SeriesPoint, format string) {
	section(w, title)
	if len(points) == 0 {
		fmt.Fprintln(w, "No data available.")
		return
	}

	fmt.Fprintf(w, "%s\t%s\n", category, value)
	for _, p := range points {
		fmt.Fprintf(w, "%s\t"+format+"\n", p.Label, p.Value)
	}
}
