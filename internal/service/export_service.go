package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/models"
	"github.com/placementcell/placement-dashboard/internal/service/storage"
)

var (
	ErrUnsupportedFormat    = errors.New("unsupported export format")
	ErrStorageNotConfigured = errors.New("export storage is not configured")
)

var exportHeader = []string{"section", "name", "metric", "value"}

type ExportService interface {
	Export(ctx context.Context, format string) ([]byte, error)
	Archive(ctx context.Context, format string) (*models.ExportArchive, error)
}

type exportService struct {
	dashboard DashboardService
	storage   storage.ObjectStorage
	logger    zerolog.Logger
}

// NewExportService accepts a nil store; Archive then fails with ErrStorageNotConfigured.
func NewExportService(dashboard DashboardService, store storage.ObjectStorage, logger zerolog.Logger) ExportService {
	return &exportService{
		dashboard: dashboard,
		storage:   store,
		logger:    logger,
	}
}

func (s *exportService) Export(ctx context.Context, format string) ([]byte, error) {
	if format != models.ExportFormatCSV && format != models.ExportFormatJSON {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	data, err := s.dashboard.ExportData(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case models.ExportFormatJSON:
		return json.MarshalIndent(data, "", "  ")
	default:
		return encodeCSV(data)
	}
}

func (s *exportService) Archive(ctx context.Context, format string) (*models.ExportArchive, error) {
	if s.storage == nil {
		return nil, ErrStorageNotConfigured
	}

	body, err := s.Export(ctx, format)
	if err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	key := fmt.Sprintf("exports/%s/%s.%s", createdAt.Format("2006/01/02"), uuid.New().String(), format)

	if err := s.storage.Put(ctx, key, ContentType(format), bytes.NewReader(body), int64(len(body))); err != nil {
		return nil, fmt.Errorf("failed to archive export: %w", err)
	}

	url, err := s.storage.PresignedURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to archive export: %w", err)
	}

	s.logger.Info().
		Str("key", key).
		Int("size", len(body)).
		Msg("Dashboard export archived")

	return &models.ExportArchive{
		Key:       key,
		URL:       url,
		Size:      int64(len(body)),
		CreatedAt: createdAt,
	}, nil
}

func ContentType(format string) string {
	switch format {
	case models.ExportFormatJSON:
		return "application/json"
	case models.ExportFormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// encodeCSV flattens the export into long-format rows of section, name, metric, value.
func encodeCSV(data *models.DashboardExport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{exportHeader}

	o := data.Overview
	rows = append(rows,
		[]string{"overview", "", "total_students", formatInt(o.TotalStudents)},
		[]string{"overview", "", "total_companies", formatInt(o.TotalCompanies)},
		[]string{"overview", "", "total_jobs", formatInt(o.TotalJobs)},
		[]string{"overview", "", "avg_package", formatInt(o.AvgPackage)},
		[]string{"overview", "", "max_package", formatFloat(o.MaxPackage)},
		[]string{"overview", "", "total_applications", formatInt(o.TotalApplications)},
		[]string{"overview", "", "total_offers", formatInt(o.TotalOffers)},
		[]string{"overview", "", "placement_percentage", formatInt(o.PlacementPercentage)},
	)

	for _, b := range data.PackageDistribution {
		rows = append(rows, []string{"package_distribution", b.SalaryRange, "job_count", formatInt(b.JobCount)})
	}

	for _, b := range data.BranchComparison {
		rows = append(rows,
			[]string{"branch_comparison", b.BranchName, "total_students", formatInt(b.TotalStudents)},
			[]string{"branch_comparison", b.BranchName, "students_applied", formatInt(b.StudentsApplied)},
			[]string{"branch_comparison", b.BranchName, "students_placed", formatInt(b.StudentsPlaced)},
			[]string{"branch_comparison", b.BranchName, "placement_percentage", formatFloat(b.PlacementPercentage)},
			[]string{"branch_comparison", b.BranchName, "avg_package", formatFloat(b.AvgPackage)},
			[]string{"branch_comparison", b.BranchName, "max_package", formatFloat(b.MaxPackage)},
		)
	}

	for _, c := range data.TopRecruitingCompanies {
		rows = append(rows,
			[]string{"top_recruiting_companies", c.CompanyName, "total_jobs", formatInt(c.TotalJobs)},
			[]string{"top_recruiting_companies", c.CompanyName, "avg_salary", formatFloat(c.AvgSalary)},
			[]string{"top_recruiting_companies", c.CompanyName, "max_salary", formatFloat(c.MaxSalary)},
			[]string{"top_recruiting_companies", c.CompanyName, "total_applications", formatInt(c.TotalApplications)},
			[]string{"top_recruiting_companies", c.CompanyName, "selected_count", formatInt(c.SelectedCount)},
		)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return buf.Bytes(), nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
