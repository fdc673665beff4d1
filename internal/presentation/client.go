// Package presentation loads the aggregation endpoints and turns them into the
// cards, tables and chart series shown on the dashboard.
package presentation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/placementcell/placement-dashboard/internal/config"
	"github.com/placementcell/placement-dashboard/internal/models"
)

const (
	metricsPath              = "/api/dashboard/metrics"
	placementTrendsPath      = "/api/dashboard/placement-trends"
	industryDistributionPath = "/api/dashboard/industry-distribution"
	packageDistributionPath  = "/api/dashboard/package-distribution"
	topRecruitingPath        = "/api/dashboard/companies/top-recruiting"
	branchComparisonPath     = "/api/dashboard/branch-comparison"
	jobTypeDistributionPath  = "/api/dashboard/job-type-distribution"
	snapshotPath             = "/api/student/reports-analytics/dashboard"
)

// CompanyRow is a top-recruiting entry. Some producers name the company under
// "company" instead of "company_name".
type CompanyRow struct {
	CompanyName       string  `json:"company_name"`
	Company           string  `json:"company"`
	TotalJobs         int64   `json:"total_jobs"`
	AvgSalary         float64 `json:"avg_salary"`
	MaxSalary         float64 `json:"max_salary"`
	IndustryName      string  `json:"industry_name"`
	TotalApplications int64   `json:"total_applications"`
	SelectedCount     int64   `json:"selected_count"`
}

func (c CompanyRow) Name() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.Company
}

// Dashboard holds one complete batch of aggregation responses.
type Dashboard struct {
	Metrics              models.OverviewMetrics
	PlacementTrends      []models.PlacementTrend
	IndustryDistribution []models.IndustryDistribution
	PackageDistribution  []models.SalaryRangeBucket
	TopCompanies         []CompanyRow
	BranchComparison     []models.BranchComparison
	JobTypeDistribution  []models.JobTypeDistribution
	Snapshot             models.DashboardSnapshot
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg config.ClientConfig, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Load fetches the whole batch concurrently and waits for every request. Any failure
// fails the load; no partial Dashboard is returned.
func (c *Client) Load(ctx context.Context) (*Dashboard, error) {
	var (
		d Dashboard
		g errgroup.Group
	)

	g.Go(func() error { return c.getJSON(ctx, metricsPath, &d.Metrics) })
	g.Go(func() error { return c.getJSON(ctx, placementTrendsPath, &d.PlacementTrends) })
	g.Go(func() error { return c.getJSON(ctx, industryDistributionPath, &d.IndustryDistribution) })
	g.Go(func() error { return c.getJSON(ctx, packageDistributionPath, &d.PackageDistribution) })
	g.Go(func() error { return c.getJSON(ctx, topRecruitingPath, &d.TopCompanies) })
	g.Go(func() error { return c.getJSON(ctx, branchComparisonPath, &d.BranchComparison) })
	g.Go(func() error { return c.getJSON(ctx, jobTypeDistributionPath, &d.JobTypeDistribution) })
	g.Go(func() error { return c.getJSON(ctx, snapshotPath, &d.Snapshot) })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return &d, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&body)

		c.logger.Warn().
			Str("path", path).
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Str("error", body.Error).
			Msg("Aggregation request failed")

		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, body.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}
