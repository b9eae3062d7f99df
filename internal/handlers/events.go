package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/api/types"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/logger"
	"github.com/mentorbridge/dashboard/internal/responses"
)

// HandleListEvents returns events matching the query's filter keys.
// Only keys present on the incoming request are forwarded to the platform API.
func (h *HandlerService) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := types.EventFilters{
		Status: query.Get("status"),
		Search: query.Get("search"),
	}
	if query.Has("is_virtual") {
		v, err := strconv.ParseBool(query.Get("is_virtual"))
		if err != nil {
			responses.RespondWithError(w, r, http.StatusBadRequest,
				apperrors.ErrCodeInvalidURLParam, "is_virtual must be true or false")
			return
		}
		filters.IsVirtual = &v
	}
	if query.Has("is_featured") {
		v, err := strconv.ParseBool(query.Get("is_featured"))
		if err != nil {
			responses.RespondWithError(w, r, http.StatusBadRequest,
				apperrors.ErrCodeInvalidURLParam, "is_featured must be true or false")
			return
		}
		filters.IsFeatured = &v
	}

	events, err := h.clientFor(r).ListEvents(filters)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, events)
}

func (h *HandlerService) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.clientFor(r).GetEvent(chi.URLParam(r, "eventID"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, event)
}

// eventInputFromForm builds the upstream event payload from the submitted form.
// An attached image switches the upstream call to a multipart upload.
func eventInputFromForm(r *http.Request) (api.EventInput, string) {
	input := api.EventInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
	}

	if input.Title == "" {
		return input, "title is required"
	}

	input.IsVirtual = r.FormValue("is_virtual") == "true"
	input.IsFeatured = r.FormValue("is_featured") == "true"

	startsAt, err := time.Parse(time.RFC3339, r.FormValue("starts_at"))
	if err != nil {
		return input, "starts_at must be an RFC 3339 timestamp"
	}
	endsAt, err := time.Parse(time.RFC3339, r.FormValue("ends_at"))
	if err != nil {
		return input, "ends_at must be an RFC 3339 timestamp"
	}
	input.StartsAt = startsAt
	input.EndsAt = endsAt

	if file, header, err := r.FormFile("image"); err == nil {
		input.Image = file
		input.ImageFilename = header.Filename
	}

	return input, ""
}

func (h *HandlerService) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not parse event form")
		return
	}

	input, validationErr := eventInputFromForm(r)
	defer closeUpload(input.Image)

	if validationErr != "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, validationErr)
		return
	}

	event, err := h.clientFor(r).CreateEvent(input)
	if err != nil {
		reqLogger.Warn("event creation failed", slog.String("error", err.Error()))
		respondAPIError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusCreated, event)
}

func (h *HandlerService) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not parse event form")
		return
	}

	input, validationErr := eventInputFromForm(r)
	defer closeUpload(input.Image)

	if validationErr != "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, validationErr)
		return
	}

	event, err := h.clientFor(r).UpdateEvent(chi.URLParam(r, "eventID"), input)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, event)
}

// HandleDeleteEvent removes an event. A 404 from the backend means the event is
// already gone, which is reported as success to keep the operation idempotent for
// the dashboard user.
func (h *HandlerService) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.clientFor(r).DeleteEvent(chi.URLParam(r, "eventID")); err != nil {
		if api.IsNotFound(err) {
			responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
			return
		}
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

func (h *HandlerService) HandleRegisterForEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.clientFor(r).RegisterForEvent(chi.URLParam(r, "eventID")); err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

func (h *HandlerService) HandleAddEventTag(w http.ResponseWriter, r *http.Request) {
	tag := r.FormValue("tag")
	if tag == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, "tag is required")
		return
	}

	if err := h.clientFor(r).AddEventTag(chi.URLParam(r, "eventID"), tag); err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

func (h *HandlerService) HandleListAttendees(w http.ResponseWriter, r *http.Request) {
	attendees, err := h.clientFor(r).ListAttendees(chi.URLParam(r, "eventID"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, attendees)
}

func (h *HandlerService) HandleUpdateAttendeeStatus(w http.ResponseWriter, r *http.Request) {
	status := r.FormValue("status")
	if status == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, "status is required")
		return
	}

	attendee, err := h.clientFor(r).UpdateAttendeeStatus(
		chi.URLParam(r, "eventID"), chi.URLParam(r, "attendeeID"), status)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, attendee)
}
