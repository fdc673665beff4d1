package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
)

// CatalogRepository inserts single rows into the catalog tables. Nil request fields
// are stored as NULL.
type CatalogRepository interface {
	CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (int64, error)
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (int64, error)
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (int64, error)
	CreateApplication(ctx context.Context, req *models.CreateApplicationRequest) (int64, error)
}

type catalogRepository struct {
	*SQLRepository
}

func NewCatalogRepository(db *sql.DB, dialect database.Dialect, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		SQLRepository: NewSQLRepository(db, dialect, logger),
	}
}

func (r *catalogRepository) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (int64, error) {
	query := `
		INSERT INTO student_master (name, email, contact, roll_num, urls, about_yourself, dob, is_resume_public, photo_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return r.dialect.InsertID(ctx, r.db, query,
		req.Name,
		req.Email,
		req.Contact,
		req.RollNum,
		req.URLs,
		req.AboutYourself,
		req.DOB,
		req.IsResumePublic,
		req.PhotoURL,
	)
}

func (r *catalogRepository) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (int64, error) {
	query := `
		INSERT INTO company (company_name, company_url, about, industry_id, imagelink, location)
		VALUES (?, ?, ?, ?, ?, ?)`

	return r.dialect.InsertID(ctx, r.db, query,
		req.CompanyName,
		req.CompanyURL,
		req.About,
		req.IndustryID,
		req.ImageLink,
		req.Location,
	)
}

func (r *catalogRepository) CreateJob(ctx context.Context, req *models.CreateJobRequest) (int64, error) {
	query := `
		INSERT INTO jobs (job_type, duration, job_role, salary, jd_url, location, tech_stack,
			eligibility_id, company_id, application_deadline, posted_date, no_of_openings, academic_year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return r.dialect.InsertID(ctx, r.db, query,
		req.JobType,
		req.Duration,
		req.JobRole,
		req.Salary,
		req.JDURL,
		req.Location,
		req.TechStack,
		req.EligibilityID,
		req.CompanyID,
		req.ApplicationDeadline,
		req.PostedDate,
		req.NoOfOpenings,
		req.AcademicYear,
	)
}

func (r *catalogRepository) CreateApplication(ctx context.Context, req *models.CreateApplicationRequest) (int64, error) {
	query := `
		INSERT INTO applied_jobs (student_id, job_id, resume_id, date_applied, application_status, sem, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	return r.dialect.InsertID(ctx, r.db, query,
		req.StudentID,
		req.JobID,
		req.ResumeID,
		req.DateApplied,
		req.ApplicationStatus,
		req.Sem,
		req.LastUpdated,
	)
}
