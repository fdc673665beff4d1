package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
)

type mockAnalyticsRepo struct {
	mock.Mock
	sessions int
}

func (m *mockAnalyticsRepo) Session(ctx context.Context, fn func(q database.Querier) error) error {
	m.sessions++
	return fn(nil)
}

func (m *mockAnalyticsRepo) OverviewCounts(ctx context.Context, q database.Querier) (*models.OverviewCounts, error) {
	args := m.Called()
	counts, _ := args.Get(0).(*models.OverviewCounts)
	return counts, args.Error(1)
}

func (m *mockAnalyticsRepo) PlacementTrends(ctx context.Context, q database.Querier, years int) ([]models.PlacementTrend, error) {
	args := m.Called(years)
	rows, _ := args.Get(0).([]models.PlacementTrend)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) IndustryDistribution(ctx context.Context, q database.Querier) ([]models.IndustryDistribution, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.IndustryDistribution)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) SalaryBandCounts(ctx context.Context, q database.Querier) ([]models.SalaryBandCount, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.SalaryBandCount)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) TopRecruitingCompanies(ctx context.Context, q database.Querier, limit int) ([]models.TopRecruitingCompany, error) {
	args := m.Called(limit)
	rows, _ := args.Get(0).([]models.TopRecruitingCompany)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) BranchAggregates(ctx context.Context, q database.Querier) ([]models.BranchAggregate, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.BranchAggregate)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) JobTypeDistribution(ctx context.Context, q database.Querier) ([]models.JobTypeDistribution, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.JobTypeDistribution)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) ApplicationStatusCounts(ctx context.Context, q database.Querier) ([]models.StatusCount, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.StatusCount)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) StudentStatistics(ctx context.Context, q database.Querier) (*models.StudentStatistics, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*models.StudentStatistics)
	return stats, args.Error(1)
}

func (m *mockAnalyticsRepo) ApplicationStatistics(ctx context.Context, q database.Querier) (*models.ApplicationStatistics, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*models.ApplicationStatistics)
	return stats, args.Error(1)
}

func (m *mockAnalyticsRepo) CompanyStatistics(ctx context.Context, q database.Querier) (*models.CompanyStatistics, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*models.CompanyStatistics)
	return stats, args.Error(1)
}

func (m *mockAnalyticsRepo) JobStatistics(ctx context.Context, q database.Querier) (*models.JobStatistics, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*models.JobStatistics)
	return stats, args.Error(1)
}

func (m *mockAnalyticsRepo) ResumeStatistics(ctx context.Context, q database.Querier) (*models.ResumeStatistics, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*models.ResumeStatistics)
	return stats, args.Error(1)
}

func (m *mockAnalyticsRepo) IndustryStatistics(ctx context.Context, q database.Querier) (*models.IndustryStatistics, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*models.IndustryStatistics)
	return stats, args.Error(1)
}

func (m *mockAnalyticsRepo) RecentApplications(ctx context.Context, q database.Querier, since time.Time, limit int) ([]models.RecentApplication, error) {
	args := m.Called(since, limit)
	rows, _ := args.Get(0).([]models.RecentApplication)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) TopCompaniesByApplications(ctx context.Context, q database.Querier, limit int) ([]models.CompanyApplications, error) {
	args := m.Called(limit)
	rows, _ := args.Get(0).([]models.CompanyApplications)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) JobTypeStatistics(ctx context.Context, q database.Querier) ([]models.JobTypeStatistics, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.JobTypeStatistics)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) ApplicationStatusStatistics(ctx context.Context, q database.Querier) ([]models.ApplicationStatusStatistics, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.ApplicationStatusStatistics)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) CompanyAnalytics(ctx context.Context, q database.Querier) ([]models.CompanyAnalytics, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.CompanyAnalytics)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) StudentAnalytics(ctx context.Context, q database.Querier) ([]models.StudentAnalytics, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.StudentAnalytics)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) JobAnalytics(ctx context.Context, q database.Querier) ([]models.JobAnalytics, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.JobAnalytics)
	return rows, args.Error(1)
}

func (m *mockAnalyticsRepo) IndustryAnalytics(ctx context.Context, q database.Querier) ([]models.IndustryAnalytics, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]models.IndustryAnalytics)
	return rows, args.Error(1)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (int64, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalogRepo) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (int64, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalogRepo) CreateJob(ctx context.Context, req *models.CreateJobRequest) (int64, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalogRepo) CreateApplication(ctx context.Context, req *models.CreateApplicationRequest) (int64, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.Error(1)
}

type mockRabbitMQ struct {
	mock.Mock
}

func (m *mockRabbitMQ) PublishEntityCreated(ctx context.Context, event *models.EntityCreatedEvent) error {
	return m.Called(event).Error(0)
}

func (m *mockRabbitMQ) Close() error {
	return nil
}

type mockStorage struct {
	mock.Mock
	body []byte
}

func (m *mockStorage) Put(ctx context.Context, key, contentType string, data io.Reader, size int64) error {
	body, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.body = body
	return m.Called(key, contentType, size).Error(0)
}

func (m *mockStorage) PresignedURL(ctx context.Context, key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}
