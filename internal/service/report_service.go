package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/models"
	"github.com/placementcell/placement-dashboard/internal/repository"
)

// ReportService serves the per-entity analytics reports.
type ReportService interface {
	CompanyAnalytics(ctx context.Context) ([]models.CompanyAnalytics, error)
	StudentAnalytics(ctx context.Context) ([]models.StudentAnalytics, error)
	JobAnalytics(ctx context.Context) ([]models.JobAnalytics, error)
	IndustryAnalytics(ctx context.Context) ([]models.IndustryAnalytics, error)
}

type reportService struct {
	repo   repository.AnalyticsRepository
	logger zerolog.Logger
}

func NewReportService(repo repository.AnalyticsRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// runReport executes a single report query on its own pooled connection.
func runReport[T any](ctx context.Context, repo repository.AnalyticsRepository, name string,
	query func(context.Context, database.Querier) ([]T, error)) ([]T, error) {
	var rows []T
	err := repo.Session(ctx, func(q database.Querier) error {
		var err error
		rows, err = query(ctx, q)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s analytics: %w", name, err)
	}

	return rows, nil
}

func (s *reportService) CompanyAnalytics(ctx context.Context) ([]models.CompanyAnalytics, error) {
	return runReport(ctx, s.repo, "company", s.repo.CompanyAnalytics)
}

func (s *reportService) StudentAnalytics(ctx context.Context) ([]models.StudentAnalytics, error) {
	return runReport(ctx, s.repo, "student", s.repo.StudentAnalytics)
}

func (s *reportService) JobAnalytics(ctx context.Context) ([]models.JobAnalytics, error) {
	return runReport(ctx, s.repo, "job", s.repo.JobAnalytics)
}

func (s *reportService) IndustryAnalytics(ctx context.Context) ([]models.IndustryAnalytics, error) {
	return runReport(ctx, s.repo, "industry", s.repo.IndustryAnalytics)
}
