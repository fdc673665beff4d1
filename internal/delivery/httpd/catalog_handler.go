package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/placementcell/placement-dashboard/internal/models"
)

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.catalogService.CreateStudent(r.Context(), &req)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to create student", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.catalogService.CreateCompany(r.Context(), &req)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to create company", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.catalogService.CreateJob(r.Context(), &req)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to create job", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req models.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.catalogService.CreateApplication(r.Context(), &req)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to create application", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
