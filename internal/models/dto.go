package models

import "time"

// Data Transfer Objects

// Insert requests mirror one row each. Absent fields are stored as NULL.

type CreateStudentRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Contact        *string `json:"contact"`
	RollNum        *string `json:"roll_num"`
	URLs           *string `json:"urls"`
	AboutYourself  *string `json:"about_yourself"`
	DOB            *string `json:"dob"`
	IsResumePublic *bool   `json:"Is_resume_public"`
	PhotoURL       *string `json:"photo_url"`
}

type CreateCompanyRequest struct {
	CompanyName *string `json:"company_name"`
	CompanyURL  *string `json:"company_url"`
	About       *string `json:"about"`
	IndustryID  *int64  `json:"industry_id"`
	ImageLink   *string `json:"imagelink"`
	Location    *string `json:"location"`
}

type CreateJobRequest struct {
	JobType             *string  `json:"job_type"`
	Duration            *string  `json:"duration"`
	JobRole             *string  `json:"job_role"`
	Salary              *float64 `json:"salary"`
	JDURL               *string  `json:"jd_url"`
	Location            *string  `json:"location"`
	TechStack           *string  `json:"tech_stack"`
	EligibilityID       *int64   `json:"eligibility_id"`
	CompanyID           *int64   `json:"company_id"`
	ApplicationDeadline *string  `json:"application_deadline"`
	PostedDate          *string  `json:"posted_date"`
	NoOfOpenings        *int64   `json:"no_of_openings"`
	AcademicYear        *string  `json:"academic_year"`
}

type CreateApplicationRequest struct {
	StudentID         *int64  `json:"student_id"`
	JobID             *int64  `json:"job_id"`
	ResumeID          *int64  `json:"resume_id"`
	DateApplied       *string `json:"date_applied"`
	ApplicationStatus *string `json:"application_status"`
	Sem               *int64  `json:"sem"`
	LastUpdated       *string `json:"last_updated"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type PingResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

type ExportArchive struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

// DashboardExport is the downloadable copy of the headline dashboard figures.
type DashboardExport struct {
	GeneratedAt            time.Time              `json:"generated_at"`
	Overview               OverviewMetrics        `json:"overview"`
	PackageDistribution    []SalaryRangeBucket    `json:"package_distribution"`
	BranchComparison       []BranchComparison     `json:"branch_comparison"`
	TopRecruitingCompanies []TopRecruitingCompany `json:"top_recruiting_companies"`
}
