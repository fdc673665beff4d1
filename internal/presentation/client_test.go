package presentation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementcell/placement-dashboard/internal/config"
)

var responses = map[string]string{
	metricsPath:              `{"total_students":100,"total_companies":12,"total_jobs":30,"avg_package":650000,"max_package":2600000,"total_applications":250,"total_offers":45,"placement_percentage":40}`,
	placementTrendsPath:      `[{"year":2026,"total_applications":50,"selected_count":10},{"year":2025,"total_applications":0,"selected_count":0}]`,
	industryDistributionPath: `[{"industry_name":"Technology","company_count":4,"total_applications":20,"selected_count":3},{"industry_name":"Technology","company_count":1,"total_applications":7,"selected_count":5}]`,
	packageDistributionPath:  `[{"salary_range":"0-5 LPA","job_count":1},{"salary_range":"5-10 LPA","job_count":1},{"salary_range":"25+ LPA","job_count":1}]`,
	topRecruitingPath:        `[{"company_name":"Acme","total_jobs":3,"avg_salary":650000,"max_salary":900000,"industry_name":"Technology","selected_count":2},{"company":"Globex","total_jobs":1}]`,
	branchComparisonPath:     `[{"branch_code":"1","branch_name":"Computer Science","placement_percentage":55.5}]`,
	jobTypeDistributionPath:  `[{"job_type":"Full Time","job_count":20}]`,
	snapshotPath:             `{"student_statistics":{"total_students":100},"application_statistics":{"total_applications":250,"unique_students_applied":64},"job_statistics":{"average_salary":650000,"max_salary":2600000},"academic_year":"2026-2027","last_updated":"2026-03-15T10:30:00Z"}`,
}

type fakeServer struct {
	mu       sync.Mutex
	failPath string
	seen     map[string]string
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.seen[r.URL.Path] = r.Header.Get("X-Request-Id")
	f.mu.Unlock()

	if r.URL.Path == f.failPath {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to fetch industry distribution"}`))
		return
	}

	body, ok := responses[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func newTestClient(t *testing.T, failPath string) (*Client, *fakeServer) {
	t.Helper()

	fake := &fakeServer{failPath: failPath, seen: make(map[string]string)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := NewClient(config.ClientConfig{BaseURL: srv.URL + "/", Timeout: 5 * time.Second}, zerolog.Nop())
	return client, fake
}

func TestLoad(t *testing.T) {
	client, fake := newTestClient(t, "")

	d, err := client.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(40), d.Metrics.PlacementPercentage)
	assert.Len(t, d.PlacementTrends, 2)
	assert.Len(t, d.IndustryDistribution, 2)
	assert.Len(t, d.PackageDistribution, 3)
	assert.Equal(t, "Globex", d.TopCompanies[1].Name())
	assert.Equal(t, "Computer Science", d.BranchComparison[0].BranchName)
	assert.Equal(t, "Full Time", d.JobTypeDistribution[0].JobType)
	assert.Equal(t, "2026-2027", d.Snapshot.AcademicYear)

	assert.Len(t, fake.seen, len(responses))
	for path, id := range fake.seen {
		assert.NotEmpty(t, id, path)
	}
}

func TestLoad_AnyFailureFailsWholeBatch(t *testing.T) {
	client, _ := newTestClient(t, industryDistributionPath)

	d, err := client.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, d)
	assert.Contains(t, err.Error(), "failed to load dashboard")
	assert.Contains(t, err.Error(), "Failed to fetch industry distribution")
}

func TestLoad_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(config.ClientConfig{BaseURL: url}, zerolog.Nop())
	d, err := client.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, d)
}

func TestCompanyRowName(t *testing.T) {
	assert.Equal(t, "Acme", CompanyRow{CompanyName: "Acme", Company: "Other"}.Name())
	assert.Equal(t, "Other", CompanyRow{Company: "Other"}.Name())
	assert.Equal(t, "", CompanyRow{}.Name())
}
