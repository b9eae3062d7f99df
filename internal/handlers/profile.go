package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/logger"
	"github.com/mentorbridge/dashboard/internal/responses"
)

// HandleGetProfile returns the current user's profile
func (h *HandlerService) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.clientFor(r).CurrentUser()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, profile)
}

// HandleUpdateProfile replaces the current user's profile. An attached avatar image
// switches the upstream call to a multipart upload.
func (h *HandlerService) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not parse profile form")
		return
	}

	update := api.ProfileUpdate{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Location: r.FormValue("location"),
		Bio:      r.FormValue("bio"),
	}

	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		update.Avatar = file
		update.AvatarFilename = header.Filename
	}

	profile, err := h.clientFor(r).UpdateProfile(update)
	if err != nil {
		reqLogger.Warn("profile update failed", slog.String("error", err.Error()))
		respondAPIError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, profile)
}
