package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
	"github.com/placementcell/placement-dashboard/internal/repository"
	"github.com/placementcell/placement-dashboard/pkg/utils"
)

const (
	trendYears              = 5
	topRecruitingLimit      = 10
	snapshotTopCompanies    = 5
	recentApplicationsLimit = 10
	recentApplicationsDays  = 30
)

type DashboardService interface {
	Overview(ctx context.Context) (*models.OverviewMetrics, error)
	PlacementTrends(ctx context.Context) ([]models.PlacementTrend, error)
	IndustryDistribution(ctx context.Context) ([]models.IndustryDistribution, error)
	PackageDistribution(ctx context.Context) ([]models.SalaryRangeBucket, error)
	TopRecruitingCompanies(ctx context.Context) ([]models.TopRecruitingCompany, error)
	BranchComparison(ctx context.Context) ([]models.BranchComparison, error)
	JobTypeDistribution(ctx context.Context) ([]models.JobTypeDistribution, error)
	ApplicationStatusDistribution(ctx context.Context) ([]models.ApplicationStatusDistribution, error)
	Snapshot(ctx context.Context) (*models.DashboardSnapshot, error)
	ExportData(ctx context.Context) (*models.DashboardExport, error)
}

type dashboardService struct {
	repo   repository.AnalyticsRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewDashboardService(repo repository.AnalyticsRepository, logger zerolog.Logger) DashboardService {
	return newDashboardService(repo, time.Now, logger)
}

func newDashboardService(repo repository.AnalyticsRepository, now func() time.Time, logger zerolog.Logger) *dashboardService {
	return &dashboardService{
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

func (s *dashboardService) Overview(ctx context.Context) (*models.OverviewMetrics, error) {
	var metrics *models.OverviewMetrics
	err := s.repo.Session(ctx, func(q database.Querier) error {
		counts, err := s.repo.OverviewCounts(ctx, q)
		if err != nil {
			return err
		}
		metrics = buildOverview(counts)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get overview metrics: %w", err)
	}

	return metrics, nil
}

func (s *dashboardService) PlacementTrends(ctx context.Context) ([]models.PlacementTrend, error) {
	var trends []models.PlacementTrend
	err := s.repo.Session(ctx, func(q database.Querier) error {
		var err error
		trends, err = s.repo.PlacementTrends(ctx, q, trendYears)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get placement trends: %w", err)
	}

	return trends, nil
}

func (s *dashboardService) IndustryDistribution(ctx context.Context) ([]models.IndustryDistribution, error) {
	var dist []models.IndustryDistribution
	err := s.repo.Session(ctx, func(q database.Querier) error {
		var err error
		dist, err = s.repo.IndustryDistribution(ctx, q)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get industry distribution: %w", err)
	}

	return dist, nil
}

func (s *dashboardService) PackageDistribution(ctx context.Context) ([]models.SalaryRangeBucket, error) {
	var buckets []models.SalaryRangeBucket
	err := s.repo.Session(ctx, func(q database.Querier) error {
		counts, err := s.repo.SalaryBandCounts(ctx, q)
		if err != nil {
			return err
		}
		buckets, err = salaryBuckets(counts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get package distribution: %w", err)
	}

	return buckets, nil
}

func (s *dashboardService) TopRecruitingCompanies(ctx context.Context) ([]models.TopRecruitingCompany, error) {
	var companies []models.TopRecruitingCompany
	err := s.repo.Session(ctx, func(q database.Querier) error {
		var err error
		companies, err = s.repo.TopRecruitingCompanies(ctx, q, topRecruitingLimit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top recruiting companies: %w", err)
	}

	return companies, nil
}

func (s *dashboardService) BranchComparison(ctx context.Context) ([]models.BranchComparison, error) {
	var branches []models.BranchComparison
	err := s.repo.Session(ctx, func(q database.Querier) error {
		aggs, err := s.repo.BranchAggregates(ctx, q)
		if err != nil {
			return err
		}
		branches = compareBranches(aggs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get branch comparison: %w", err)
	}

	return branches, nil
}

func (s *dashboardService) JobTypeDistribution(ctx context.Context) ([]models.JobTypeDistribution, error) {
	var dist []models.JobTypeDistribution
	err := s.repo.Session(ctx, func(q database.Querier) error {
		var err error
		dist, err = s.repo.JobTypeDistribution(ctx, q)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get job type distribution: %w", err)
	}

	return dist, nil
}

func (s *dashboardService) ApplicationStatusDistribution(ctx context.Context) ([]models.ApplicationStatusDistribution, error) {
	var dist []models.ApplicationStatusDistribution
	err := s.repo.Session(ctx, func(q database.Querier) error {
		counts, err := s.repo.ApplicationStatusCounts(ctx, q)
		if err != nil {
			return err
		}
		dist = statusDistribution(counts)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get application status distribution: %w", err)
	}

	return dist, nil
}

func (s *dashboardService) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	now := s.now()
	snapshot := &models.DashboardSnapshot{
		LastUpdated:  now.UTC().Format(time.RFC3339),
		AcademicYear: academicYear(now),
	}

	err := s.repo.Session(ctx, func(q database.Querier) error {
		students, err := s.repo.StudentStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("student statistics: %w", err)
		}
		snapshot.StudentStatistics = *students

		applications, err := s.repo.ApplicationStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("application statistics: %w", err)
		}
		snapshot.ApplicationStatistics = *applications

		companies, err := s.repo.CompanyStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("company statistics: %w", err)
		}
		snapshot.CompanyStatistics = *companies

		jobs, err := s.repo.JobStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("job statistics: %w", err)
		}
		snapshot.JobStatistics = *jobs

		resumes, err := s.repo.ResumeStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("resume statistics: %w", err)
		}
		snapshot.ResumeStatistics = *resumes

		industries, err := s.repo.IndustryStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("industry statistics: %w", err)
		}
		snapshot.IndustryStatistics = *industries

		snapshot.RecentApplications, err = s.repo.RecentApplications(ctx, q, recentCutoff(now), recentApplicationsLimit)
		if err != nil {
			return fmt.Errorf("recent applications: %w", err)
		}

		snapshot.TopCompanies, err = s.repo.TopCompaniesByApplications(ctx, q, snapshotTopCompanies)
		if err != nil {
			return fmt.Errorf("top companies: %w", err)
		}

		snapshot.JobTypeDistribution, err = s.repo.JobTypeStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("job type statistics: %w", err)
		}

		snapshot.ApplicationStatusDistribution, err = s.repo.ApplicationStatusStatistics(ctx, q)
		if err != nil {
			return fmt.Errorf("application status statistics: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard snapshot: %w", err)
	}

	return snapshot, nil
}

func (s *dashboardService) ExportData(ctx context.Context) (*models.DashboardExport, error) {
	export := &models.DashboardExport{GeneratedAt: s.now().UTC()}

	err := s.repo.Session(ctx, func(q database.Querier) error {
		counts, err := s.repo.OverviewCounts(ctx, q)
		if err != nil {
			return err
		}
		export.Overview = *buildOverview(counts)

		bands, err := s.repo.SalaryBandCounts(ctx, q)
		if err != nil {
			return err
		}
		if export.PackageDistribution, err = salaryBuckets(bands); err != nil {
			return err
		}

		aggs, err := s.repo.BranchAggregates(ctx, q)
		if err != nil {
			return err
		}
		export.BranchComparison = compareBranches(aggs)

		export.TopRecruitingCompanies, err = s.repo.TopRecruitingCompanies(ctx, q, topRecruitingLimit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect export data: %w", err)
	}

	return export, nil
}

func buildOverview(c *models.OverviewCounts) *models.OverviewMetrics {
	return &models.OverviewMetrics{
		TotalStudents:       c.TotalStudents,
		TotalCompanies:      c.TotalCompanies,
		TotalJobs:           c.TotalJobs,
		AvgPackage:          int64(utils.Round(c.AvgSalary, 0)),
		MaxPackage:          c.MaxSalary,
		TotalApplications:   c.TotalApplications,
		TotalOffers:         c.TotalOffers,
		PlacementPercentage: int64(utils.Percentage(float64(c.SelectedStudents), float64(c.TotalStudents), 0)),
	}
}

// salaryBuckets labels grouped band counts and orders them by band rank. Empty bands
// are not reported.
func salaryBuckets(counts []models.SalaryBandCount) ([]models.SalaryRangeBucket, error) {
	sorted := make([]models.SalaryBandCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	buckets := make([]models.SalaryRangeBucket, 0, len(sorted))
	for _, c := range sorted {
		if c.JobCount == 0 {
			continue
		}
		band, err := models.BandByRank(c.Rank)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, models.SalaryRangeBucket{
			SalaryRange: band.Label,
			JobCount:    c.JobCount,
		})
	}

	return buckets, nil
}

func compareBranches(aggs []models.BranchAggregate) []models.BranchComparison {
	branches := make([]models.BranchComparison, 0, len(aggs))
	for _, a := range aggs {
		branches = append(branches, models.BranchComparison{
			BranchCode:          a.BranchCode,
			BranchName:          models.BranchName(a.BranchCode),
			TotalStudents:       a.TotalStudents,
			StudentsApplied:     a.StudentsApplied,
			StudentsPlaced:      a.StudentsPlaced,
			PlacementPercentage: utils.Percentage(float64(a.StudentsPlaced), float64(a.TotalStudents), 2),
			AvgPackage:          a.AvgPackage,
			MaxPackage:          a.MaxPackage,
		})
	}

	sort.SliceStable(branches, func(i, j int) bool {
		if branches[i].PlacementPercentage != branches[j].PlacementPercentage {
			return branches[i].PlacementPercentage > branches[j].PlacementPercentage
		}
		return branches[i].TotalStudents > branches[j].TotalStudents
	})

	return branches
}

func statusDistribution(counts []models.StatusCount) []models.ApplicationStatusDistribution {
	var total int64
	for _, c := range counts {
		total += c.Count
	}

	dist := make([]models.ApplicationStatusDistribution, 0, len(counts))
	for _, c := range counts {
		dist = append(dist, models.ApplicationStatusDistribution{
			ApplicationStatus: c.ApplicationStatus,
			Count:             c.Count,
			Percentage:        utils.Percentage(float64(c.Count), float64(total), 2),
		})
	}

	return dist
}

func academicYear(now time.Time) string {
	return fmt.Sprintf("%d-%d", now.Year(), now.Year()+1)
}

// recentCutoff is midnight of the day recentApplicationsDays before now.
func recentCutoff(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -recentApplicationsDays)
}
