package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
)

// AnalyticsRepository runs the read-only aggregate queries. Every method executes on
// the Querier handed in by Session so a request uses a single pooled connection.
type AnalyticsRepository interface {
	Session(ctx context.Context, fn func(q database.Querier) error) error

	OverviewCounts(ctx context.Context, q database.Querier) (*models.OverviewCounts, error)
	PlacementTrends(ctx context.Context, q database.Querier, years int) ([]models.PlacementTrend, error)
	IndustryDistribution(ctx context.Context, q database.Querier) ([]models.IndustryDistribution, error)
	SalaryBandCounts(ctx context.Context, q database.Querier) ([]models.SalaryBandCount, error)
	TopRecruitingCompanies(ctx context.Context, q database.Querier, limit int) ([]models.TopRecruitingCompany, error)
	BranchAggregates(ctx context.Context, q database.Querier) ([]models.BranchAggregate, error)
	JobTypeDistribution(ctx context.Context, q database.Querier) ([]models.JobTypeDistribution, error)
	ApplicationStatusCounts(ctx context.Context, q database.Querier) ([]models.StatusCount, error)

	SnapshotQueries
	ReportQueries
}

type analyticsRepository struct {
	*SQLRepository
}

func NewAnalyticsRepository(db *sql.DB, dialect database.Dialect, logger zerolog.Logger) AnalyticsRepository {
	return &analyticsRepository{
		SQLRepository: NewSQLRepository(db, dialect, logger),
	}
}

func (r *analyticsRepository) OverviewCounts(ctx context.Context, q database.Querier) (*models.OverviewCounts, error) {
	counts := &models.OverviewCounts{}

	scalars := []struct {
		name  string
		query string
		dest  any
	}{
		{"total_students", `SELECT COUNT(*) FROM student_master`, &counts.TotalStudents},
		{"total_companies", `SELECT COUNT(*) FROM company`, &counts.TotalCompanies},
		{"total_jobs", `SELECT COUNT(*) FROM jobs`, &counts.TotalJobs},
		{"avg_package", `SELECT COALESCE(AVG(salary), 0) FROM jobs`, &counts.AvgSalary},
		{"max_package", `SELECT COALESCE(MAX(salary), 0) FROM jobs`, &counts.MaxSalary},
		{"total_applications", `SELECT COUNT(*) FROM applied_jobs`, &counts.TotalApplications},
		{"total_offers", `SELECT COALESCE(SUM(no_of_openings), 0) FROM jobs`, &counts.TotalOffers},
		{"selected_students", `
			SELECT COUNT(DISTINCT student_id)
			FROM applied_jobs
			WHERE application_status = 'selected'
		`, &counts.SelectedStudents},
	}

	for _, s := range scalars {
		if err := scanScalar(ctx, q, s.query, s.dest); err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", s.name, err)
		}
	}

	return counts, nil
}

func (r *analyticsRepository) PlacementTrends(ctx context.Context, q database.Querier, years int) ([]models.PlacementTrend, error) {
	query := r.dialect.Rebind(`
		SELECT
			EXTRACT(YEAR FROM aj.date_applied) AS year,
			COUNT(*) AS total_applications,
			COUNT(CASE WHEN aj.application_status = 'selected' THEN 1 END) AS selected_count
		FROM applied_jobs aj
		WHERE aj.date_applied IS NOT NULL
		GROUP BY EXTRACT(YEAR FROM aj.date_applied)
		ORDER BY year DESC
		LIMIT ?
	`)

	rows, err := q.QueryContext(ctx, query, years)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trends := []models.PlacementTrend{}
	for rows.Next() {
		var (
			year  float64
			trend models.PlacementTrend
		)
		if err := rows.Scan(&year, &trend.TotalApplications, &trend.SelectedCount); err != nil {
			return nil, err
		}
		trend.Year = int(year)
		trends = append(trends, trend)
	}

	return trends, rows.Err()
}

func (r *analyticsRepository) IndustryDistribution(ctx context.Context, q database.Querier) ([]models.IndustryDistribution, error) {
	query := `
		SELECT
			COALESCE(i.industry_name, '') AS industry_name,
			COUNT(DISTINCT c.id) AS company_count,
			COUNT(aj.id) AS total_applications,
			COUNT(CASE WHEN aj.application_status = 'selected' THEN 1 END) AS selected_count
		FROM industry i
		LEFT JOIN company c ON i.id = c.industry_id
		LEFT JOIN jobs j ON c.id = j.company_id
		LEFT JOIN applied_jobs aj ON j.id = aj.job_id
		GROUP BY i.id, i.industry_name
		ORDER BY company_count DESC, industry_name
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dist := []models.IndustryDistribution{}
	for rows.Next() {
		var d models.IndustryDistribution
		if err := rows.Scan(&d.IndustryName, &d.CompanyCount, &d.TotalApplications, &d.SelectedCount); err != nil {
			return nil, err
		}
		dist = append(dist, d)
	}

	return dist, rows.Err()
}

// salaryBandCase renders models.SalaryBands as a CASE expression yielding the band rank,
// so the bucketing in SQL and in Go cannot drift apart.
func salaryBandCase(column string) string {
	var b strings.Builder
	b.WriteString("CASE")
	last := models.SalaryBands[len(models.SalaryBands)-1]
	for _, band := range models.SalaryBands {
		if band.Open {
			continue
		}
		fmt.Fprintf(&b, " WHEN COALESCE(%s, 0) < %.0f THEN %d", column, band.Upper, band.Rank)
	}
	fmt.Fprintf(&b, " ELSE %d END", last.Rank)
	return b.String()
}

func (r *analyticsRepository) SalaryBandCounts(ctx context.Context, q database.Querier) ([]models.SalaryBandCount, error) {
	query := fmt.Sprintf(`
		SELECT band_rank, COUNT(*) AS job_count
		FROM (
			SELECT %s AS band_rank
			FROM jobs
		) salary_ranges
		GROUP BY band_rank
		ORDER BY band_rank
	`, salaryBandCase("salary"))

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.SalaryBandCount{}
	for rows.Next() {
		var c models.SalaryBandCount
		if err := rows.Scan(&c.Rank, &c.JobCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (r *analyticsRepository) TopRecruitingCompanies(ctx context.Context, q database.Querier, limit int) ([]models.TopRecruitingCompany, error) {
	query := r.dialect.Rebind(`
		SELECT
			COALESCE(c.company_name, '') AS company_name,
			COUNT(DISTINCT j.id) AS total_jobs,
			COALESCE(AVG(j.salary), 0) AS avg_salary,
			COALESCE(MAX(j.salary), 0) AS max_salary,
			COALESCE(i.industry_name, '') AS industry_name,
			COUNT(aj.id) AS total_applications,
			COUNT(CASE WHEN aj.application_status = 'selected' THEN 1 END) AS selected_count
		FROM company c
		LEFT JOIN industry i ON c.industry_id = i.id
		LEFT JOIN jobs j ON c.id = j.company_id
		LEFT JOIN applied_jobs aj ON j.id = aj.job_id
		GROUP BY c.id, c.company_name, i.industry_name
		HAVING COUNT(DISTINCT j.id) > 0
		ORDER BY total_jobs DESC, avg_salary DESC
		LIMIT ?
	`)

	rows, err := q.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []models.TopRecruitingCompany{}
	for rows.Next() {
		var c models.TopRecruitingCompany
		err := rows.Scan(
			&c.CompanyName,
			&c.TotalJobs,
			&c.AvgSalary,
			&c.MaxSalary,
			&c.IndustryName,
			&c.TotalApplications,
			&c.SelectedCount,
		)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

func (r *analyticsRepository) BranchAggregates(ctx context.Context, q database.Querier) ([]models.BranchAggregate, error) {
	query := `
		SELECT
			sem.eligibility_param_value AS branch_code,
			COUNT(DISTINCT sm.id) AS total_students,
			COUNT(DISTINCT aj.student_id) AS students_applied,
			COUNT(CASE WHEN aj.application_status = 'selected' THEN 1 END) AS students_placed,
			COALESCE(AVG(j.salary), 0) AS avg_package,
			COALESCE(MAX(j.salary), 0) AS max_package
		FROM student_master sm
		LEFT JOIN student_eligibility_mapping sem
			ON sm.id = sem.student_id AND sem.eligibility_param_name = 'branch'
		LEFT JOIN applied_jobs aj ON sm.id = aj.student_id
		LEFT JOIN jobs j ON aj.job_id = j.id
		WHERE sem.eligibility_param_value IS NOT NULL
		GROUP BY sem.eligibility_param_value
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []models.BranchAggregate{}
	for rows.Next() {
		var b models.BranchAggregate
		err := rows.Scan(
			&b.BranchCode,
			&b.TotalStudents,
			&b.StudentsApplied,
			&b.StudentsPlaced,
			&b.AvgPackage,
			&b.MaxPackage,
		)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}

func (r *analyticsRepository) JobTypeDistribution(ctx context.Context, q database.Querier) ([]models.JobTypeDistribution, error) {
	query := `
		SELECT
			COALESCE(j.job_type, '') AS job_type,
			COUNT(DISTINCT j.id) AS job_count,
			COALESCE(AVG(j.salary), 0) AS avg_salary,
			COUNT(aj.id) AS total_applications,
			COUNT(CASE WHEN aj.application_status = 'selected' THEN 1 END) AS selected_count
		FROM jobs j
		LEFT JOIN applied_jobs aj ON j.id = aj.job_id
		GROUP BY j.job_type
		ORDER BY job_count DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dist := []models.JobTypeDistribution{}
	for rows.Next() {
		var d models.JobTypeDistribution
		if err := rows.Scan(&d.JobType, &d.JobCount, &d.AvgSalary, &d.TotalApplications, &d.SelectedCount); err != nil {
			return nil, err
		}
		dist = append(dist, d)
	}

	return dist, rows.Err()
}

func (r *analyticsRepository) ApplicationStatusCounts(ctx context.Context, q database.Querier) ([]models.StatusCount, error) {
	query := `
		SELECT
			COALESCE(application_status, '') AS application_status,
			COUNT(*) AS status_count
		FROM applied_jobs
		GROUP BY application_status
		ORDER BY status_count DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.StatusCount{}
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.ApplicationStatus, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
