package models

import "time"

type StudentStatistics struct {
	TotalStudents  int64 `json:"total_students"`
	UniqueEmails   int64 `json:"unique_emails"`
	UniqueContacts int64 `json:"unique_contacts"`
}

type ApplicationStatistics struct {
	TotalApplications     int64 `json:"total_applications"`
	UniqueStudentsApplied int64 `json:"unique_students_applied"`
	UniqueJobsApplied     int64 `json:"unique_jobs_applied"`
	UniqueResumesUsed     int64 `json:"unique_resumes_used"`
}

type CompanyStatistics struct {
	TotalCompanies  int64 `json:"total_companies"`
	TotalIndustries int64 `json:"total_industries"`
	TotalLocations  int64 `json:"total_locations"`
}

type JobStatistics struct {
	TotalJobs         int64   `json:"total_jobs"`
	CompaniesWithJobs int64   `json:"companies_with_jobs"`
	JobTypesAvailable int64   `json:"job_types_available"`
	JobLocations      int64   `json:"job_locations"`
	TotalOpenings     int64   `json:"total_openings"`
	AverageSalary     float64 `json:"average_salary"`
	MinSalary         float64 `json:"min_salary"`
	MaxSalary         float64 `json:"max_salary"`
}

type ResumeStatistics struct {
	TotalResumes        int64 `json:"total_resumes"`
	StudentsWithResumes int64 `json:"students_with_resumes"`
	DefaultResumes      int64 `json:"default_resumes"`
}

type IndustryStatistics struct {
	TotalIndustries int64 `json:"total_industries"`
}

type RecentApplication struct {
	StudentName       string     `json:"student_name"`
	StudentEmail      string     `json:"student_email"`
	CompanyName       string     `json:"company_name"`
	JobRole           string     `json:"job_role"`
	Salary            float64    `json:"salary"`
	JobType           string     `json:"job_type"`
	DateApplied       *time.Time `json:"date_applied"`
	ApplicationStatus string     `json:"application_status"`
}

type CompanyApplications struct {
	CompanyName       string  `json:"company_name"`
	Location          string  `json:"location"`
	IndustryName      string  `json:"industry_name"`
	ApplicationsCount int64   `json:"applications_count"`
	JobsPosted        int64   `json:"jobs_posted"`
	AverageSalary     float64 `json:"average_salary"`
}

type JobTypeStatistics struct {
	JobType       string  `json:"job_type"`
	JobCount      int64   `json:"job_count"`
	TotalOpenings int64   `json:"total_openings"`
	AverageSalary float64 `json:"average_salary"`
}

type ApplicationStatusStatistics struct {
	ApplicationStatus string `json:"application_status"`
	StatusCount       int64  `json:"status_count"`
	UniqueStudents    int64  `json:"unique_students"`
}

// DashboardSnapshot is the composite payload behind the main dashboard page.
type DashboardSnapshot struct {
	StudentStatistics             StudentStatistics             `json:"student_statistics"`
	ApplicationStatistics         ApplicationStatistics         `json:"application_statistics"`
	CompanyStatistics             CompanyStatistics             `json:"company_statistics"`
	JobStatistics                 JobStatistics                 `json:"job_statistics"`
	ResumeStatistics              ResumeStatistics              `json:"resume_statistics"`
	IndustryStatistics            IndustryStatistics            `json:"industry_statistics"`
	RecentApplications            []RecentApplication           `json:"recent_applications"`
	TopCompanies                  []CompanyApplications         `json:"top_companies"`
	JobTypeDistribution           []JobTypeStatistics           `json:"job_type_distribution"`
	ApplicationStatusDistribution []ApplicationStatusStatistics `json:"application_status_distribution"`
	LastUpdated                   string                        `json:"last_updated"`
	AcademicYear                  string                        `json:"academic_year"`
}
