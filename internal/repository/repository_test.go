package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
)

func newMock(t *testing.T, driver string) (*sql.DB, sqlmock.Sqlmock, database.Dialect) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialect, err := database.NewDialect(driver)
	require.NoError(t, err)

	return db, mock, dialect
}

func TestSessionReleasesConnection(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_industries FROM industry`).
		WillReturnRows(sqlmock.NewRows([]string{"total_industries"}).AddRow(4))

	var stats *models.IndustryStatistics
	err := repo.Session(context.Background(), func(q database.Querier) error {
		var err error
		stats, err = repo.IndustryStatistics(context.Background(), q)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalIndustries)
	assert.Equal(t, 0, db.Stats().InUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionReleasesConnectionOnError(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	boom := errors.New("connection reset")
	mock.ExpectQuery(`FROM industry`).WillReturnError(boom)

	err := repo.Session(context.Background(), func(q database.Querier) error {
		_, err := repo.IndustryStatistics(context.Background(), q)
		return err
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestOverviewCounts(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	scalar := func(v any) *sqlmock.Rows { return sqlmock.NewRows([]string{"v"}).AddRow(v) }
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_master`).WillReturnRows(scalar(100))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM company`).WillReturnRows(scalar(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs`).WillReturnRows(scalar(30))
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(salary\), 0\) FROM jobs`).WillReturnRows(scalar(612345.5))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(salary\), 0\) FROM jobs`).WillReturnRows(scalar(2600000.0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applied_jobs`).WillReturnRows(scalar(250))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(no_of_openings\), 0\) FROM jobs`).WillReturnRows(scalar(75))
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT student_id\)\s+FROM applied_jobs\s+WHERE application_status = 'selected'`).
		WillReturnRows(scalar(40))

	counts, err := repo.OverviewCounts(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, &models.OverviewCounts{
		TotalStudents:     100,
		TotalCompanies:    12,
		TotalJobs:         30,
		AvgSalary:         612345.5,
		MaxSalary:         2600000,
		TotalApplications: 250,
		TotalOffers:       75,
		SelectedStudents:  40,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverviewCountsWrapsFailingScalar(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`FROM student_master`).WillReturnError(sql.ErrConnDone)

	_, err := repo.OverviewCounts(context.Background(), db)
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "total_students")
}

func TestPlacementTrendsRebindsLimit(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`WHERE aj.date_applied IS NOT NULL.*LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"year", "total_applications", "selected_count"}).
			AddRow(2025.0, 40, 12).
			AddRow(2024.0, 35, 9))

	trends, err := repo.PlacementTrends(context.Background(), db, 5)
	require.NoError(t, err)
	assert.Equal(t, []models.PlacementTrend{
		{Year: 2025, TotalApplications: 40, SelectedCount: 12},
		{Year: 2024, TotalApplications: 35, SelectedCount: 9},
	}, trends)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlacementTrendsMySQLKeepsPlaceholder(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverMySQL)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`LIMIT \?`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"year", "total_applications", "selected_count"}))

	trends, err := repo.PlacementTrends(context.Background(), db, 5)
	require.NoError(t, err)
	assert.NotNil(t, trends)
	assert.Empty(t, trends)
}

func TestSalaryBandCase(t *testing.T) {
	expr := salaryBandCase("salary")
	assert.Equal(t,
		"CASE WHEN COALESCE(salary, 0) < 500000 THEN 1"+
			" WHEN COALESCE(salary, 0) < 1000000 THEN 2"+
			" WHEN COALESCE(salary, 0) < 1500000 THEN 3"+
			" WHEN COALESCE(salary, 0) < 2000000 THEN 4"+
			" WHEN COALESCE(salary, 0) < 2500000 THEN 5"+
			" ELSE 6 END",
		expr)
}

func TestSalaryBandCounts(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`SELECT band_rank, COUNT\(\*\) AS job_count.*GROUP BY band_rank\s+ORDER BY band_rank`).
		WillReturnRows(sqlmock.NewRows([]string{"band_rank", "job_count"}).
			AddRow(1, 1).
			AddRow(2, 1).
			AddRow(6, 1))

	counts, err := repo.SalaryBandCounts(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []models.SalaryBandCount{
		{Rank: 1, JobCount: 1},
		{Rank: 2, JobCount: 1},
		{Rank: 6, JobCount: 1},
	}, counts)
}

func TestTopRecruitingCompanies(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`HAVING COUNT\(DISTINCT j.id\) > 0\s+ORDER BY total_jobs DESC, avg_salary DESC\s+LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{
			"company_name", "total_jobs", "avg_salary", "max_salary",
			"industry_name", "total_applications", "selected_count",
		}).AddRow("Acme", 3, 800000.0, 1200000.0, "Technology", 20, 4))

	companies, err := repo.TopRecruitingCompanies(context.Background(), db, 10)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].CompanyName)
	assert.Equal(t, int64(3), companies[0].TotalJobs)
	assert.Equal(t, 1200000.0, companies[0].MaxSalary)
}

func TestBranchAggregatesExcludesNullCodes(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverMySQL)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`sem.eligibility_param_name = 'branch'.*WHERE sem.eligibility_param_value IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{
			"branch_code", "total_students", "students_applied", "students_placed", "avg_package", "max_package",
		}).AddRow("1", 50, 45, 20, 700000.0, 1800000.0))

	branches, err := repo.BranchAggregates(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []models.BranchAggregate{{
		BranchCode:      "1",
		TotalStudents:   50,
		StudentsApplied: 45,
		StudentsPlaced:  20,
		AvgPackage:      700000,
		MaxPackage:      1800000,
	}}, branches)
}

func TestRecentApplicationsUsesCutoff(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	since := time.Date(2025, 9, 19, 0, 0, 0, 0, time.UTC)
	applied := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE aj.date_applied >= \$1\s+ORDER BY aj.date_applied DESC\s+LIMIT \$2`).
		WithArgs(since, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"student_name", "student_email", "company_name", "job_role",
			"salary", "job_type", "date_applied", "application_status",
		}).
			AddRow("Asha", "asha@example.com", "Acme", "SDE", 900000.0, "Full Time", applied, "selected").
			AddRow("Ravi", "ravi@example.com", "Globex", "Analyst", 0.0, "Internship", nil, "applied"))

	recent, err := repo.RecentApplications(context.Background(), db, since, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.NotNil(t, recent[0].DateApplied)
	assert.True(t, applied.Equal(*recent[0].DateApplied))
	assert.Nil(t, recent[1].DateApplied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeStatisticsCountsDefaults(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverMySQL)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`COUNT\(CASE WHEN is_default THEN 1 END\) AS default_resumes`).
		WillReturnRows(sqlmock.NewRows([]string{"total_resumes", "students_with_resumes", "default_resumes"}).
			AddRow(8, 5, 4))

	stats, err := repo.ResumeStatistics(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, &models.ResumeStatistics{TotalResumes: 8, StudentsWithResumes: 5, DefaultResumes: 4}, stats)
}

func TestJobStatisticsRoundsSalaries(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`COALESCE\(ROUND\(AVG\(salary\), 2\), 0\) AS average_salary,\s+` +
		`COALESCE\(ROUND\(MIN\(salary\), 2\), 0\) AS min_salary,\s+` +
		`COALESCE\(ROUND\(MAX\(salary\), 2\), 0\) AS max_salary`).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_jobs", "companies_with_jobs", "job_types_available", "job_locations",
			"total_openings", "average_salary", "min_salary", "max_salary",
		}).AddRow(3, 2, 2, 2, 15, 1100000.33, 100000.0, 2600000.0))

	stats, err := repo.JobStatistics(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 1100000.33, stats.AverageSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyAnalyticsRoundsSalaries(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverMySQL)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`COALESCE\(ROUND\(AVG\(j.salary\), 2\), 0\) AS average_salary`).
		WillReturnRows(sqlmock.NewRows([]string{
			"company_name", "location", "company_url", "industry_name", "total_jobs_posted",
			"total_applications", "unique_applicants", "average_salary", "min_salary",
			"max_salary", "total_openings",
		}).AddRow("Acme", "Pune", "", "Technology", 2, 5, 4, 650000.5, 400000.0, 900000.0, 6))

	rows, err := repo.CompanyAnalytics(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 650000.5, rows[0].AverageSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobAnalyticsStatus(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHEN j.application_deadline >= CURRENT_DATE THEN 'Active'`).
		WillReturnRows(sqlmock.NewRows([]string{
			"job_role", "job_type", "location", "tech_stack", "salary", "no_of_openings",
			"academic_year", "company_name", "industry_name", "applications_received",
			"unique_applicants", "posted_date", "application_deadline", "status",
		}).AddRow("SDE", "Full Time", "Pune", "Go", 900000.0, 3, "2025-2026", "Acme", "Technology",
			7, 6, nil, deadline, models.JobStatusActive))

	report, err := repo.JobAnalytics(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, models.JobStatusActive, report[0].Status)
	assert.Nil(t, report[0].PostedDate)
	require.NotNil(t, report[0].ApplicationDeadline)
	assert.True(t, deadline.Equal(*report[0].ApplicationDeadline))
}

func TestIndustryAnalyticsScanError(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewAnalyticsRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`FROM industry i`).
		WillReturnRows(sqlmock.NewRows([]string{
			"industry_name", "total_companies", "total_jobs", "total_applications",
			"unique_applicants", "average_salary", "total_openings",
		}).AddRow("Technology", "not-a-number", 1, 1, 1, 1.0, 1))

	_, err := repo.IndustryAnalytics(context.Background(), db)
	assert.Error(t, err)
}

func TestCreateStudentPostgres(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewCatalogRepository(db, dialect, zerolog.Nop())

	name := "Asha"
	public := true
	mock.ExpectQuery(`INSERT INTO student_master .* VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, \$9\) RETURNING id`).
		WithArgs(name, nil, nil, nil, nil, nil, nil, public, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))

	id, err := repo.CreateStudent(context.Background(), &models.CreateStudentRequest{
		Name:           &name,
		IsResumePublic: &public,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicationMySQL(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverMySQL)
	repo := NewCatalogRepository(db, dialect, zerolog.Nop())

	studentID, jobID := int64(1), int64(2)
	status := models.StatusSelected
	mock.ExpectExec(`INSERT INTO applied_jobs .* VALUES \(\?, \?, \?, \?, \?, \?, \?\)`).
		WithArgs(studentID, jobID, nil, nil, status, nil, nil).
		WillReturnResult(sqlmock.NewResult(9, 1))

	id, err := repo.CreateApplication(context.Background(), &models.CreateApplicationRequest{
		StudentID:         &studentID,
		JobID:             &jobID,
		ApplicationStatus: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCompanyFailure(t *testing.T) {
	db, mock, dialect := newMock(t, database.DriverPostgres)
	repo := NewCatalogRepository(db, dialect, zerolog.Nop())

	mock.ExpectQuery(`INSERT INTO company`).WillReturnError(errors.New("fk violation"))

	_, err := repo.CreateCompany(context.Background(), &models.CreateCompanyRequest{})
	assert.Error(t, err)
}
