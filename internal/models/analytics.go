package models

import "time"

type CompanyAnalytics struct {
	CompanyName       string  `json:"company_name"`
	Location          string  `json:"location"`
	CompanyURL        string  `json:"company_url"`
	IndustryName      string  `json:"industry_name"`
	TotalJobsPosted   int64   `json:"total_jobs_posted"`
	TotalApplications int64   `json:"total_applications"`
	UniqueApplicants  int64   `json:"unique_applicants"`
	AverageSalary     float64 `json:"average_salary"`
	MinSalary         float64 `json:"min_salary"`
	MaxSalary         float64 `json:"max_salary"`
	TotalOpenings     int64   `json:"total_openings"`
}

type StudentAnalytics struct {
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Contact             string     `json:"contact"`
	RollNum             string     `json:"roll_num"`
	TotalApplications   int64      `json:"total_applications"`
	UniqueJobsApplied   int64      `json:"unique_jobs_applied"`
	ResumeCount         int64      `json:"resume_count"`
	HasDefaultResume    int64      `json:"has_default_resume"`
	LastApplicationDate *time.Time `json:"last_application_date"`
}

const (
	JobStatusActive  = "Active"
	JobStatusExpired = "Expired"
)

type JobAnalytics struct {
	JobRole              string     `json:"job_role"`
	JobType              string     `json:"job_type"`
	Location             string     `json:"location"`
	TechStack            string     `json:"tech_stack"`
	Salary               float64    `json:"salary"`
	NoOfOpenings         int64      `json:"no_of_openings"`
	AcademicYear         string     `json:"academic_year"`
	CompanyName          string     `json:"company_name"`
	IndustryName         string     `json:"industry_name"`
	ApplicationsReceived int64      `json:"applications_received"`
	UniqueApplicants     int64      `json:"unique_applicants"`
	PostedDate           *time.Time `json:"posted_date"`
	ApplicationDeadline  *time.Time `json:"application_deadline"`
	Status               string     `json:"status"`
}

type IndustryAnalytics struct {
	IndustryName      string  `json:"industry_name"`
	TotalCompanies    int64   `json:"total_companies"`
	TotalJobs         int64   `json:"total_jobs"`
	TotalApplications int64   `json:"total_applications"`
	UniqueApplicants  int64   `json:"unique_applicants"`
	AverageSalary     float64 `json:"average_salary"`
	TotalOpenings     int64   `json:"total_openings"`
}
