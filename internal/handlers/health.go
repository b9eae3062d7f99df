package handlers

import (
	"net/http"

	"github.com/mentorbridge/dashboard/internal/responses"
	"github.com/mentorbridge/dashboard/internal/version"
)

// HandleHealthz reports that the dashboard process is alive and responding.
// It says nothing about the platform API, which has its own health endpoints.
func (h *HandlerService) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// HandleVersion returns the build details of the running dashboard binary
func (h *HandlerService) HandleVersion(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithJSON(w, http.StatusOK, version.Get())
}
