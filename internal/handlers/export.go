package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/logger"
	"github.com/mentorbridge/dashboard/internal/responses"
	"github.com/mentorbridge/dashboard/internal/utils"
)

// HandleExportAnalytics streams the analytics CSV from the platform API to the
// browser as a dated file download, e.g. institution_enrollments_2026-08-31.csv.
func (h *HandlerService) HandleExportAnalytics(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("data_type")
	if dataType == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidURLParam, "data_type is required")
		return
	}

	exportContext := r.URL.Query().Get("context")
	if exportContext == "" {
		exportContext = "dashboard"
	}

	csv, err := h.clientFor(r).ExportAnalytics(dataType)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}

	filename := utils.ExportFilename(exportContext, dataType, time.Now())

	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Info("analytics export generated",
		slog.String("data_type", dataType),
		slog.String("filename", filename),
		slog.Int("bytes", len(csv)))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csv)
}
