package httpd

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/placementcell/placement-dashboard/internal/models"
	"github.com/placementcell/placement-dashboard/internal/service"
)

func exportFormat(r *http.Request) (string, bool) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = models.ExportFormatCSV
	}

	return format, format == models.ExportFormatCSV || format == models.ExportFormatJSON
}

func (h *Handler) ExportDashboard(w http.ResponseWriter, r *http.Request) {
	format, ok := exportFormat(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unsupported format. Use 'csv' or 'json'")
		return
	}

	data, err := h.exportService.Export(r.Context(), format)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "Failed to export dashboard data", err)
		return
	}

	filename := fmt.Sprintf("placement_dashboard_%s.%s", time.Now().UTC().Format("20060102_150405"), format)
	w.Header().Set("Content-Type", service.ContentType(format))
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) ArchiveExport(w http.ResponseWriter, r *http.Request) {
	format, ok := exportFormat(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unsupported format. Use 'csv' or 'json'")
		return
	}

	archive, err := h.exportService.Archive(r.Context(), format)
	if err != nil {
		if errors.Is(err, service.ErrStorageNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, "Export storage is not configured")
			return
		}
		h.fail(w, r, http.StatusInternalServerError, "Failed to archive dashboard export", err)
		return
	}

	writeJSON(w, http.StatusCreated, archive)
}
