package repository

import (
	"context"
	"database/sql"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
)

// ReportQueries back the per-entity analytics reports.
type ReportQueries interface {
	CompanyAnalytics(ctx context.Context, q database.Querier) ([]models.CompanyAnalytics, error)
	StudentAnalytics(ctx context.Context, q database.Querier) ([]models.StudentAnalytics, error)
	JobAnalytics(ctx context.Context, q database.Querier) ([]models.JobAnalytics, error)
	IndustryAnalytics(ctx context.Context, q database.Querier) ([]models.IndustryAnalytics, error)
}

func (r *analyticsRepository) CompanyAnalytics(ctx context.Context, q database.Querier) ([]models.CompanyAnalytics, error) {
	query := `
		SELECT
			COALESCE(c.company_name, '') AS company_name,
			COALESCE(c.location, '') AS location,
			COALESCE(c.company_url, '') AS company_url,
			COALESCE(i.industry_name, '') AS industry_name,
			COUNT(DISTINCT j.id) AS total_jobs_posted,
			COUNT(aj.id) AS total_applications,
			COUNT(DISTINCT aj.student_id) AS unique_applicants,
			COALESCE(ROUND(AVG(j.salary), 2), 0) AS average_salary,
			COALESCE(ROUND(MIN(j.salary), 2), 0) AS min_salary,
			COALESCE(ROUND(MAX(j.salary), 2), 0) AS max_salary,
			COALESCE(SUM(j.no_of_openings), 0) AS total_openings
		FROM company c
		LEFT JOIN industry i ON c.industry_id = i.id
		LEFT JOIN jobs j ON c.id = j.company_id
		LEFT JOIN applied_jobs aj ON j.id = aj.job_id
		GROUP BY c.id, c.company_name, c.location, c.company_url, i.industry_name
		ORDER BY total_applications DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []models.CompanyAnalytics{}
	for rows.Next() {
		var c models.CompanyAnalytics
		err := rows.Scan(
			&c.CompanyName,
			&c.Location,
			&c.CompanyURL,
			&c.IndustryName,
			&c.TotalJobsPosted,
			&c.TotalApplications,
			&c.UniqueApplicants,
			&c.AverageSalary,
			&c.MinSalary,
			&c.MaxSalary,
			&c.TotalOpenings,
		)
		if err != nil {
			return nil, err
		}
		report = append(report, c)
	}

	return report, rows.Err()
}

func (r *analyticsRepository) StudentAnalytics(ctx context.Context, q database.Querier) ([]models.StudentAnalytics, error) {
	query := `
		SELECT
			COALESCE(sm.name, '') AS name,
			COALESCE(sm.email, '') AS email,
			COALESCE(sm.contact, '') AS contact,
			COALESCE(sm.roll_num, '') AS roll_num,
			COUNT(aj.id) AS total_applications,
			COUNT(DISTINCT aj.job_id) AS unique_jobs_applied,
			COUNT(r.id) AS resume_count,
			COUNT(CASE WHEN r.is_default THEN 1 END) AS has_default_resume,
			MAX(aj.date_applied) AS last_application_date
		FROM student_master sm
		LEFT JOIN applied_jobs aj ON sm.id = aj.student_id
		LEFT JOIN resume r ON sm.id = r.student_id
		GROUP BY sm.id, sm.name, sm.email, sm.contact, sm.roll_num
		ORDER BY total_applications DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []models.StudentAnalytics{}
	for rows.Next() {
		var (
			s    models.StudentAnalytics
			last sql.NullTime
		)
		err := rows.Scan(
			&s.Name,
			&s.Email,
			&s.Contact,
			&s.RollNum,
			&s.TotalApplications,
			&s.UniqueJobsApplied,
			&s.ResumeCount,
			&s.HasDefaultResume,
			&last,
		)
		if err != nil {
			return nil, err
		}
		s.LastApplicationDate = timePtr(last)
		report = append(report, s)
	}

	return report, rows.Err()
}

func (r *analyticsRepository) JobAnalytics(ctx context.Context, q database.Querier) ([]models.JobAnalytics, error) {
	query := `
		SELECT
			COALESCE(j.job_role, '') AS job_role,
			COALESCE(j.job_type, '') AS job_type,
			COALESCE(j.location, '') AS location,
			COALESCE(j.tech_stack, '') AS tech_stack,
			COALESCE(j.salary, 0) AS salary,
			COALESCE(j.no_of_openings, 0) AS no_of_openings,
			COALESCE(j.academic_year, '') AS academic_year,
			COALESCE(c.company_name, '') AS company_name,
			COALESCE(i.industry_name, '') AS industry_name,
			COUNT(aj.id) AS applications_received,
			COUNT(DISTINCT aj.student_id) AS unique_applicants,
			j.posted_date,
			j.application_deadline,
			CASE
				WHEN j.application_deadline >= CURRENT_DATE THEN 'Active'
				ELSE 'Expired'
			END AS status
		FROM jobs j
		LEFT JOIN company c ON j.company_id = c.id
		LEFT JOIN industry i ON c.industry_id = i.id
		LEFT JOIN applied_jobs aj ON j.id = aj.job_id
		GROUP BY j.id, j.job_role, j.job_type, j.location, j.tech_stack, j.salary,
			j.no_of_openings, j.academic_year, c.company_name, i.industry_name,
			j.posted_date, j.application_deadline
		ORDER BY applications_received DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []models.JobAnalytics{}
	for rows.Next() {
		var (
			j                models.JobAnalytics
			posted, deadline sql.NullTime
		)
		err := rows.Scan(
			&j.JobRole,
			&j.JobType,
			&j.Location,
			&j.TechStack,
			&j.Salary,
			&j.NoOfOpenings,
			&j.AcademicYear,
			&j.CompanyName,
			&j.IndustryName,
			&j.ApplicationsReceived,
			&j.UniqueApplicants,
			&posted,
			&deadline,
			&j.Status,
		)
		if err != nil {
			return nil, err
		}
		j.PostedDate = timePtr(posted)
		j.ApplicationDeadline = timePtr(deadline)
		report = append(report, j)
	}

	return report, rows.Err()
}

func (r *analyticsRepository) IndustryAnalytics(ctx context.Context, q database.Querier) ([]models.IndustryAnalytics, error) {
	query := `
		SELECT
			COALESCE(i.industry_name, '') AS industry_name,
			COUNT(DISTINCT c.id) AS total_companies,
			COUNT(DISTINCT j.id) AS total_jobs,
			COUNT(aj.id) AS total_applications,
			COUNT(DISTINCT aj.student_id) AS unique_applicants,
			COALESCE(ROUND(AVG(j.salary), 2), 0) AS average_salary,
			COALESCE(SUM(j.no_of_openings), 0) AS total_openings
		FROM industry i
		LEFT JOIN company c ON i.id = c.industry_id
		LEFT JOIN jobs j ON c.id = j.company_id
		LEFT JOIN applied_jobs aj ON j.id = aj.job_id
		GROUP BY i.id, i.industry_name
		ORDER BY total_applications DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []models.IndustryAnalytics{}
	for rows.Next() {
		var i models.IndustryAnalytics
		err := rows.Scan(
			&i.IndustryName,
			&i.TotalCompanies,
			&i.TotalJobs,
			&i.TotalApplications,
			&i.UniqueApplicants,
			&i.AverageSalary,
			&i.TotalOpenings,
		)
		if err != nil {
			return nil, err
		}
		report = append(report, i)
	}

	return report, rows.Err()
}
