package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/api/types"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/responses"
)

func (h *HandlerService) HandleListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := types.BookingFilters{Status: query.Get("status")}
	if query.Has("from") {
		t, err := time.Parse(time.RFC3339, query.Get("from"))
		if err != nil {
			responses.RespondWithError(w, r, http.StatusBadRequest,
				apperrors.ErrCodeInvalidURLParam, "from must be an RFC 3339 timestamp")
			return
		}
		filters.From = &t
	}
	if query.Has("to") {
		t, err := time.Parse(time.RFC3339, query.Get("to"))
		if err != nil {
			responses.RespondWithError(w, r, http.StatusBadRequest,
				apperrors.ErrCodeInvalidURLParam, "to must be an RFC 3339 timestamp")
			return
		}
		filters.To = &t
	}

	bookings, err := h.clientFor(r).ListBookings(filters)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, bookings)
}

func (h *HandlerService) HandleGetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.clientFor(r).GetBooking(chi.URLParam(r, "bookingID"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, booking)
}

// bookingInputFromForm parses the booking fields present on the form. Fields left off
// the form stay unset so a PATCH carries only what changed; HandleCreateBooking
// enforces the fields a new booking must have.
func bookingInputFromForm(r *http.Request) (api.BookingInput, string) {
	input := api.BookingInput{
		MentorID: r.FormValue("mentor_id"),
		Topic:    r.FormValue("topic"),
	}

	if v := r.FormValue("scheduled_at"); v != "" {
		scheduledAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return input, "scheduled_at must be an RFC 3339 timestamp"
		}
		input.ScheduledAt = &scheduledAt
	}

	if v := r.FormValue("duration_mins"); v != "" {
		durationMins, err := strconv.Atoi(v)
		if err != nil || durationMins <= 0 {
			return input, "duration_mins must be a positive integer"
		}
		input.DurationMins = durationMins
	}

	return input, ""
}

func (h *HandlerService) HandleCreateBooking(w http.ResponseWriter, r *http.Request) {
	input, validationErr := bookingInputFromForm(r)
	if validationErr == "" {
		switch {
		case input.MentorID == "":
			validationErr = "mentor_id is required"
		case input.ScheduledAt == nil:
			validationErr = "scheduled_at is required"
		case input.DurationMins == 0:
			validationErr = "duration_mins is required"
		}
	}
	if validationErr != "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, validationErr)
		return
	}

	booking, err := h.clientFor(r).CreateBooking(input)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusCreated, booking)
}

func (h *HandlerService) HandleUpdateBooking(w http.ResponseWriter, r *http.Request) {
	input, validationErr := bookingInputFromForm(r)
	if validationErr != "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, validationErr)
		return
	}

	booking, err := h.clientFor(r).UpdateBooking(chi.URLParam(r, "bookingID"), input)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, booking)
}

// HandleCancelBooking cancels a booking. An already-cancelled booking reported as 404
// by the backend is treated as success.
func (h *HandlerService) HandleCancelBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.clientFor(r).CancelBooking(chi.URLParam(r, "bookingID")); err != nil {
		if api.IsNotFound(err) {
			responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
			return
		}
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

// HandleDownloadReceipt streams the booking receipt to the browser as a PDF attachment
func (h *HandlerService) HandleDownloadReceipt(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	receipt, err := h.clientFor(r).DownloadReceipt(bookingID)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", bookingID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(receipt)
}

func (h *HandlerService) HandleBookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.clientFor(r).BookingStatistics()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, stats)
}
