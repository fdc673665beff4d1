package models

// StatusSelected is the application_status value that counts as a placement.
const StatusSelected = "selected"

// OverviewCounts holds the raw scalars behind the overview card row.
type OverviewCounts struct {
	TotalStudents     int64
	TotalCompanies    int64
	TotalJobs         int64
	AvgSalary         float64
	MaxSalary         float64
	TotalApplications int64
	TotalOffers       int64
	SelectedStudents  int64
}

type OverviewMetrics struct {
	TotalStudents       int64   `json:"total_students"`
	TotalCompanies      int64   `json:"total_companies"`
	TotalJobs           int64   `json:"total_jobs"`
	AvgPackage          int64   `json:"avg_package"`
	MaxPackage          float64 `json:"max_package"`
	TotalApplications   int64   `json:"total_applications"`
	TotalOffers         int64   `json:"total_offers"`
	PlacementPercentage int64   `json:"placement_percentage"`
}

type PlacementTrend struct {
	Year              int   `json:"year"`
	TotalApplications int64 `json:"total_applications"`
	SelectedCount     int64 `json:"selected_count"`
}

type IndustryDistribution struct {
	IndustryName      string `json:"industry_name"`
	CompanyCount      int64  `json:"company_count"`
	TotalApplications int64  `json:"total_applications"`
	SelectedCount     int64  `json:"selected_count"`
}

// SalaryBandCount is one grouped row of the package distribution query.
type SalaryBandCount struct {
	Rank     int
	JobCount int64
}

type SalaryRangeBucket struct {
	SalaryRange string `json:"salary_range"`
	JobCount    int64  `json:"job_count"`
}

type TopRecruitingCompany struct {
	CompanyName       string  `json:"company_name"`
	TotalJobs         int64   `json:"total_jobs"`
	AvgSalary         float64 `json:"avg_salary"`
	MaxSalary         float64 `json:"max_salary"`
	IndustryName      string  `json:"industry_name"`
	TotalApplications int64   `json:"total_applications"`
	SelectedCount     int64   `json:"selected_count"`
}

// BranchAggregate is one grouped row of the branch comparison query, before naming.
type BranchAggregate struct {
	BranchCode      string
	TotalStudents   int64
	StudentsApplied int64
	StudentsPlaced  int64
	AvgPackage      float64
	MaxPackage      float64
}

type BranchComparison struct {
	BranchCode          string  `json:"branch_code"`
	BranchName          string  `json:"branch_name"`
	TotalStudents       int64   `json:"total_students"`
	StudentsApplied     int64   `json:"students_applied"`
	StudentsPlaced      int64   `json:"students_placed"`
	PlacementPercentage float64 `json:"placement_percentage"`
	AvgPackage          float64 `json:"avg_package"`
	MaxPackage          float64 `json:"max_package"`
}

type JobTypeDistribution struct {
	JobType           string  `json:"job_type"`
	JobCount          int64   `json:"job_count"`
	AvgSalary         float64 `json:"avg_salary"`
	TotalApplications int64   `json:"total_applications"`
	SelectedCount     int64   `json:"selected_count"`
}

type StatusCount struct {
	ApplicationStatus string
	Count             int64
}

type ApplicationStatusDistribution struct {
	ApplicationStatus string  `json:"application_status"`
	Count             int64   `json:"count"`
	Percentage        float64 `json:"percentage"`
}
