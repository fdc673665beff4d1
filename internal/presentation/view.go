package presentation

import (
	"fmt"
	"math"

	"github.com/placementcell/placement-dashboard/internal/models"
	"github.com/placementcell/placement-dashboard/pkg/utils"
)

const (
	topCompaniesRows = 10
	missingValue     = "-"
)

type KeyMetric struct {
	Label string
	Value string
}

type TrendPoint struct {
	Year          int
	Applications  int64
	Selected      int64
	PlacementRate float64
}

type SeriesPoint struct {
	Label string
	Value float64
}

type CompanyTableRow struct {
	Company     string
	TotalOffers int64
	AvgPackage  int64
	MaxPackage  int64
	Industry    string
}

// View is everything the dashboard draws, derived once per load.
type View struct {
	AcademicYear     string
	LastUpdated      string
	KeyMetrics       []KeyMetric
	PlacementTrends  []TrendPoint
	BranchComparison []SeriesPoint
	IndustryDonut    []SeriesPoint
	Packages         []SeriesPoint
	JobTypes         []SeriesPoint
	TopCompanies     []CompanyTableRow
}

func BuildView(d *Dashboard) *View {
	return &View{
		AcademicYear:     d.Snapshot.AcademicYear,
		LastUpdated:      d.Snapshot.LastUpdated,
		KeyMetrics:       KeyMetrics(d),
		PlacementTrends:  Trends(d.PlacementTrends),
		BranchComparison: BranchSeries(d.BranchComparison),
		IndustryDonut:    IndustryDonut(d.IndustryDistribution),
		Packages:         PackageSeries(d.PackageDistribution),
		JobTypes:         JobTypeSeries(d.JobTypeDistribution),
		TopCompanies:     TopCompaniesTable(d.TopCompanies),
	}
}

func KeyMetrics(d *Dashboard) []KeyMetric {
	jobs := d.Snapshot.JobStatistics
	apps := d.Snapshot.ApplicationStatistics

	offers := missingValue
	if apps.TotalApplications > 0 {
		offers = fmt.Sprintf("%d", apps.TotalApplications)
	}

	return []KeyMetric{
		{Label: "Total Students", Value: fmt.Sprintf("%d", d.Snapshot.StudentStatistics.TotalStudents)},
		{Label: "Average Placement %", Value: PlacementPercentage(apps.UniqueStudentsApplied, d.Snapshot.StudentStatistics.TotalStudents)},
		{Label: "Average Package", Value: packageLabel(jobs.AverageSalary)},
		{Label: "Highest Package", Value: packageLabel(jobs.MaxSalary)},
		{Label: "Total Offers", Value: offers},
		{Label: "Total Companies", Value: fmt.Sprintf("%d", d.Metrics.TotalCompanies)},
	}
}

// PlacementPercentage formats applied/total as a percentage, or "-" without students.
func PlacementPercentage(applied, total int64) string {
	if total <= 0 {
		return missingValue
	}
	return fmt.Sprintf("%.2f%%", float64(applied)/float64(total)*100)
}

func packageLabel(amount float64) string {
	if amount == 0 {
		return missingValue
	}
	return fmt.Sprintf("₹%.2f LPA", Lakhs(amount))
}

// Lakhs converts a base-unit amount to lakhs with two decimals.
func Lakhs(amount float64) float64 {
	return utils.Round(amount/models.LakhsPerUnit, 2)
}

// WholeLakhs converts a base-unit amount to whole lakhs for table cells.
func WholeLakhs(amount float64) int64 {
	return int64(math.Round(amount / models.LakhsPerUnit))
}

// YearRate is selected/total as a percentage with two decimals, 0 for an empty year.
func YearRate(selected, total int64) float64 {
	return utils.Percentage(float64(selected), float64(total), 2)
}

func Trends(trends []models.PlacementTrend) []TrendPoint {
	points := make([]TrendPoint, 0, len(trends))
	for _, t := range trends {
		points = append(points, TrendPoint{
			Year:          t.Year,
			Applications:  t.TotalApplications,
			Selected:      t.SelectedCount,
			PlacementRate: YearRate(t.SelectedCount, t.TotalApplications),
		})
	}
	return points
}

func BranchSeries(branches []models.BranchComparison) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(branches))
	for _, b := range branches {
		points = append(points, SeriesPoint{Label: b.BranchName, Value: b.PlacementPercentage})
	}
	return points
}

// IndustryDonut charts only the first row of each industry, and only when that row has
// selections. A later duplicate never replaces an empty first row.
func IndustryDonut(industries []models.IndustryDistribution) []SeriesPoint {
	seen := make(map[string]struct{}, len(industries))
	points := make([]SeriesPoint, 0, len(industries))

	for _, item := range industries {
		if _, ok := seen[item.IndustryName]; ok {
			continue
		}
		seen[item.IndustryName] = struct{}{}

		if item.SelectedCount <= 0 {
			continue
		}
		points = append(points, SeriesPoint{Label: item.IndustryName, Value: float64(item.SelectedCount)})
	}

	return points
}

func PackageSeries(buckets []models.SalaryRangeBucket) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, SeriesPoint{Label: b.SalaryRange, Value: float64(b.JobCount)})
	}
	return points
}

func JobTypeSeries(types []models.JobTypeDistribution) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(types))
	for _, t := range types {
		points = append(points, SeriesPoint{Label: t.JobType, Value: float64(t.JobCount)})
	}
	return points
}

// TopCompaniesTable keeps the first row per company name and at most ten rows.
func TopCompaniesTable(companies []CompanyRow) []CompanyTableRow {
	seen := make(map[string]struct{}, len(companies))
	rows := make([]CompanyTableRow, 0, topCompaniesRows)

	for _, c := range companies {
		if len(rows) == topCompaniesRows {
			break
		}

		name := c.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		row := CompanyTableRow{
			Company:     name,
			TotalOffers: c.SelectedCount,
			AvgPackage:  WholeLakhs(c.AvgSalary),
			MaxPackage:  WholeLakhs(c.MaxSalary),
			Industry:    c.IndustryName,
		}
		if row.Company == "" {
			row.Company = "Unknown"
		}
		if row.Industry == "" {
			row.Industry = "Unknown"
		}
		rows = append(rows, row)
	}

	return rows
}
