package httpd

import (
	"net/http"
)

func (h *Handler) GetCompanyAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.CompanyAnalytics(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"company_analytics": report})
}

func (h *Handler) GetStudentAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.StudentAnalytics(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"student_analytics": report})
}

func (h *Handler) GetJobAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.JobAnalytics(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"job_analytics": report})
}

func (h *Handler) GetIndustryAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.IndustryAnalytics(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"industry_analytics": report})
}
