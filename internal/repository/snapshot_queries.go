package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
)

// SnapshotQueries feed the composite dashboard payload.
type SnapshotQueries interface {
	StudentStatistics(ctx context.Context, q database.Querier) (*models.StudentStatistics, error)
	ApplicationStatistics(ctx context.Context, q database.Querier) (*models.ApplicationStatistics, error)
	CompanyStatistics(ctx context.Context, q database.Querier) (*models.CompanyStatistics, error)
	JobStatistics(ctx context.Context, q database.Querier) (*models.JobStatistics, error)
	ResumeStatistics(ctx context.Context, q database.Querier) (*models.ResumeStatistics, error)
	IndustryStatistics(ctx context.Context, q database.Querier) (*models.IndustryStatistics, error)
	RecentApplications(ctx context.Context, q database.Querier, since time.Time, limit int) ([]models.RecentApplication, error)
	TopCompaniesByApplications(ctx context.Context, q database.Querier, limit int) ([]models.CompanyApplications, error)
	JobTypeStatistics(ctx context.Context, q database.Querier) ([]models.JobTypeStatistics, error)
	ApplicationStatusStatistics(ctx context.Context, q database.Querier) ([]models.ApplicationStatusStatistics, error)
}

func (r *analyticsRepository) StudentStatistics(ctx context.Context, q database.Querier) (*models.StudentStatistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_students,
			COUNT(DISTINCT email) AS unique_emails,
			COUNT(DISTINCT contact) AS unique_contacts
		FROM student_master
	`

	stats := &models.StudentStatistics{}
	err := q.QueryRowContext(ctx, query).Scan(
		&stats.TotalStudents,
		&stats.UniqueEmails,
		&stats.UniqueContacts,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) ApplicationStatistics(ctx context.Context, q database.Querier) (*models.ApplicationStatistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_applications,
			COUNT(DISTINCT student_id) AS unique_students_applied,
			COUNT(DISTINCT job_id) AS unique_jobs_applied,
			COUNT(DISTINCT resume_id) AS unique_resumes_used
		FROM applied_jobs
	`

	stats := &models.ApplicationStatistics{}
	err := q.QueryRowContext(ctx, query).Scan(
		&stats.TotalApplications,
		&stats.UniqueStudentsApplied,
		&stats.UniqueJobsApplied,
		&stats.UniqueResumesUsed,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) CompanyStatistics(ctx context.Context, q database.Querier) (*models.CompanyStatistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_companies,
			COUNT(DISTINCT industry_id) AS total_industries,
			COUNT(DISTINCT location) AS total_locations
		FROM company
	`

	stats := &models.CompanyStatistics{}
	err := q.QueryRowContext(ctx, query).Scan(
		&stats.TotalCompanies,
		&stats.TotalIndustries,
		&stats.TotalLocations,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) JobStatistics(ctx context.Context, q database.Querier) (*models.JobStatistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_jobs,
			COUNT(DISTINCT company_id) AS companies_with_jobs,
			COUNT(DISTINCT job_type) AS job_types_available,
			COUNT(DISTINCT location) AS job_locations,
			COALESCE(SUM(no_of_openings), 0) AS total_openings,
			COALESCE(ROUND(AVG(salary), 2), 0) AS average_salary,
			COALESCE(ROUND(MIN(salary), 2), 0) AS min_salary,
			COALESCE(ROUND(MAX(salary), 2), 0) AS max_salary
		FROM jobs
	`

	stats := &models.JobStatistics{}
	err := q.QueryRowContext(ctx, query).Scan(
		&stats.TotalJobs,
		&stats.CompaniesWithJobs,
		&stats.JobTypesAvailable,
		&stats.JobLocations,
		&stats.TotalOpenings,
		&stats.AverageSalary,
		&stats.MinSalary,
		&stats.MaxSalary,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) ResumeStatistics(ctx context.Context, q database.Querier) (*models.ResumeStatistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_resumes,
			COUNT(DISTINCT student_id) AS students_with_resumes,
			COUNT(CASE WHEN is_default THEN 1 END) AS default_resumes
		FROM resume
	`

	stats := &models.ResumeStatistics{}
	err := q.QueryRowContext(ctx, query).Scan(
		&stats.TotalResumes,
		&stats.StudentsWithResumes,
		&stats.DefaultResumes,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) IndustryStatistics(ctx context.Context, q database.Querier) (*models.IndustryStatistics, error) {
	stats := &models.IndustryStatistics{}
	if err := scanScalar(ctx, q, `SELECT COUNT(*) AS total_industries FROM industry`, &stats.TotalIndustries); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *analyticsRepository) RecentApplications(ctx context.Context, q database.Querier, since time.Time, limit int) ([]models.RecentApplication, error) {
	query := r.dialect.Rebind(`
		SELECT
			COALESCE(sm.name, '') AS student_name,
			COALESCE(sm.email, '') AS student_email,
			COALESCE(c.company_name, '') AS company_name,
			COALESCE(j.job_role, '') AS job_role,
			COALESCE(j.salary, 0) AS salary,
			COALESCE(j.job_type, '') AS job_type,
			aj.date_applied,
			COALESCE(aj.application_status, '') AS application_status
		FROM applied_jobs aj
		JOIN student_master sm ON aj.student_id = sm.id
		JOIN jobs j ON aj.job_id = j.id
		JOIN company c ON j.company_id = c.id
		WHERE aj.date_applied >= ?
		ORDER BY aj.date_applied DESC
		LIMIT ?
	`)

	rows, err := q.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := []models.RecentApplication{}
	for rows.Next() {
		var (
			a       models.RecentApplication
			applied sql.NullTime
		)
		err := rows.Scan(
			&a.StudentName,
			&a.StudentEmail,
			&a.CompanyName,
			&a.JobRole,
			&a.Salary,
			&a.JobType,
			&applied,
			&a.ApplicationStatus,
		)
		if err != nil {
			return nil, err
		}
		a.DateApplied = timePtr(applied)
		recent = append(recent, a)
	}

	return recent, rows.Err()
}

func (r *analyticsRepository) TopCompaniesByApplications(ctx context.Context, q database.Querier, limit int) ([]models.CompanyApplications, error) {
	query := r.dialect.Rebind(`
		SELECT
			COALESCE(c.company_name, '') AS company_name,
			COALESCE(c.location, '') AS location,
			COALESCE(i.industry_name, '') AS industry_name,
			COUNT(aj.id) AS applications_count,
			COUNT(DISTINCT j.id) AS jobs_posted,
			COALESCE(ROUND(AVG(j.salary), 2), 0) AS average_salary
		FROM company c
		LEFT JOIN industry i ON c.industry_id = i.id
		LEFT JOIN jobs j ON c.id = j.company_id
		LEFT JOIN applied_jobs aj ON j.id = aj.job_id
		GROUP BY c.id, c.company_name, c.location, i.industry_name
		ORDER BY applications_count DESC
		LIMIT ?
	`)

	rows, err := q.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []models.CompanyApplications{}
	for rows.Next() {
		var c models.CompanyApplications
		err := rows.Scan(
			&c.CompanyName,
			&c.Location,
			&c.IndustryName,
			&c.ApplicationsCount,
			&c.JobsPosted,
			&c.AverageSalary,
		)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

func (r *analyticsRepository) JobTypeStatistics(ctx context.Context, q database.Querier) ([]models.JobTypeStatistics, error) {
	query := `
		SELECT
			COALESCE(job_type, '') AS job_type,
			COUNT(*) AS job_count,
			COALESCE(SUM(no_of_openings), 0) AS total_openings,
			COALESCE(ROUND(AVG(salary), 2), 0) AS average_salary
		FROM jobs
		GROUP BY job_type
		ORDER BY job_count DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.JobTypeStatistics{}
	for rows.Next() {
		var s models.JobTypeStatistics
		if err := rows.Scan(&s.JobType, &s.JobCount, &s.TotalOpenings, &s.AverageSalary); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func (r *analyticsRepository) ApplicationStatusStatistics(ctx context.Context, q database.Querier) ([]models.ApplicationStatusStatistics, error) {
	query := `
		SELECT
			COALESCE(application_status, '') AS application_status,
			COUNT(*) AS status_count,
			COUNT(DISTINCT student_id) AS unique_students
		FROM applied_jobs
		GROUP BY application_status
		ORDER BY status_count DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.ApplicationStatusStatistics{}
	for rows.Next() {
		var s models.ApplicationStatusStatistics
		if err := rows.Scan(&s.ApplicationStatus, &s.StatusCount, &s.UniqueStudents); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
