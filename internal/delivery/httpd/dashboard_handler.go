package httpd

import (
	"net/http"
	"time"

	"github.com/placementcell/placement-dashboard/internal/models"
)

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.PingResponse{
		Message:   "Dashboard API is working!",
		Timestamp: time.Now().UTC(),
		Status:    "success",
	})
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch dashboard metrics", err)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}

func (h *Handler) GetPlacementTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.dashboardService.PlacementTrends(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch placement trends", err)
		return
	}

	writeJSON(w, http.StatusOK, trends)
}

func (h *Handler) GetIndustryDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.dashboardService.IndustryDistribution(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch industry distribution", err)
		return
	}

	writeJSON(w, http.StatusOK, dist)
}

func (h *Handler) GetPackageDistribution(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.dashboardService.PackageDistribution(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch package distribution", err)
		return
	}

	writeJSON(w, http.StatusOK, buckets)
}

func (h *Handler) GetTopRecruitingCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.dashboardService.TopRecruitingCompanies(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch top companies", err)
		return
	}

	writeJSON(w, http.StatusOK, companies)
}

func (h *Handler) GetJobTypeDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.dashboardService.JobTypeDistribution(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch job type distribution", err)
		return
	}

	writeJSON(w, http.StatusOK, dist)
}

func (h *Handler) GetApplicationStatusDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.dashboardService.ApplicationStatusDistribution(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch application status distribution", err)
		return
	}

	writeJSON(w, http.StatusOK, dist)
}

func (h *Handler) GetBranchComparison(w http.ResponseWriter, r *http.Request) {
	branches, err := h.dashboardService.BranchComparison(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to fetch branch comparison", err)
		return
	}

	writeJSON(w, http.StatusOK, branches)
}

func (h *Handler) GetDashboardSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboardService.Snapshot(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
