package httpd

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/service"
	"github.com/placementcell/placement-dashboard/pkg/utils"
)

// HealthFunc reports the state of the backing store. A "status" of "down" turns the
// health endpoint into a 503.
type HealthFunc func(ctx context.Context) map[string]string

type Handler struct {
	dashboardService service.DashboardService
	reportService    service.ReportService
	catalogService   service.CatalogService
	exportService    service.ExportService
	health           HealthFunc
	logger           zerolog.Logger
}

func NewHandler(
	dashboardService service.DashboardService,
	reportService service.ReportService,
	catalogService service.CatalogService,
	exportService service.ExportService,
	health HealthFunc,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		reportService:    reportService,
		catalogService:   catalogService,
		exportService:    exportService,
		health:           health,
		logger:           logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api", func(api chi.Router) {
		api.Route("/dashboard", func(r chi.Router) {
			r.Get("/test", h.Ping)
			r.Get("/metrics", h.GetMetrics)
			r.Get("/placement-trends", h.GetPlacementTrends)
			r.Get("/industry-distribution", h.GetIndustryDistribution)
			r.Get("/package-distribution", h.GetPackageDistribution)
			r.Get("/companies/top-recruiting", h.GetTopRecruitingCompanies)
			r.Get("/job-type-distribution", h.GetJobTypeDistribution)
			r.Get("/application-status-distribution", h.GetApplicationStatusDistribution)
			r.Get("/branch-comparison", h.GetBranchComparison)

			r.Get("/export", h.ExportDashboard)
			r.Post("/exports", h.ArchiveExport)

			r.Post("/students", h.CreateStudent)
			r.Post("/companies", h.CreateCompany)
			r.Post("/jobs", h.CreateJob)
			r.Post("/applications", h.CreateApplication)
		})

		api.Route("/student/reports-analytics", func(r chi.Router) {
			r.Get("/dashboard", h.GetDashboardSnapshot)
			r.Get("/company-analytics", h.GetCompanyAnalytics)
			r.Get("/student-analytics", h.GetStudentAnalytics)
			r.Get("/job-analytics", h.GetJobAnalytics)
			r.Get("/industry-analytics", h.GetIndustryAnalytics)
		})
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	stats := h.health(r.Context())

	status := http.StatusOK
	if stats["status"] == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, stats)
}

// fail logs err against the request and writes the generic message to the client.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	h.logger.Error().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Msg(message)

	writeError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	utils.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	utils.ErrorResponse(w, status, message)
}
