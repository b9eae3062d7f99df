package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/api/types"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/responses"
)

// HandleListApplications returns the job applications visible to the caller
func (h *HandlerService) HandleListApplications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	applications, err := h.clientFor(r).ListApplications(types.ApplicationFilters{
		JobID:  query.Get("job_id"),
		Status: query.Get("status"),
		Search: query.Get("search"),
	})
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, applications)
}

// HandleUpdateApplicationStatus accepts or rejects an application.
// The transition itself is validated by the platform backend.
func (h *HandlerService) HandleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	status := r.FormValue("status")
	if status == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, "status is required")
		return
	}

	application, err := h.clientFor(r).UpdateApplicationStatus(chi.URLParam(r, "applicationID"), status)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, application)
}

// HandleSendApplicantEmail asks the platform to email an applicant
func (h *HandlerService) HandleSendApplicantEmail(w http.ResponseWriter, r *http.Request) {
	email := api.ApplicantEmail{
		Subject: r.FormValue("subject"),
		Body:    r.FormValue("body"),
	}
	if email.Subject == "" || email.Body == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, "subject and body are required")
		return
	}

	if err := h.clientFor(r).SendApplicantEmail(chi.URLParam(r, "applicationID"), email); err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}
