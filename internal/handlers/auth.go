package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/logger"
	"github.com/mentorbridge/dashboard/internal/responses"
)

// HandleLogin authenticates the user against the platform API and sets the session cookies
func (h *HandlerService) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	if err := r.ParseForm(); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not parse login form")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, "Email and password are required")
		return
	}

	details, refreshTokenCookie, err := h.AuthService.Login(email, password)
	if err != nil {
		reqLogger.Warn("login failed", slog.String("error", err.Error()))

		if apiErr, ok := err.(*api.APIError); ok && apiErr.StatusCode == http.StatusUnauthorized {
			responses.RespondWithError(w, r, http.StatusUnauthorized,
				apperrors.ErrCodeAuthenticationFailure,
				"Login failed. Please check your email and password and try again.")
			return
		}
		respondAPIError(w, r, err)
		return
	}

	if err := h.AuthService.SetAuthCookies(w, details, refreshTokenCookie); err != nil {
		reqLogger.Error("failed to set auth cookies", slog.String("error", err.Error()))
		responses.RespondWithError(w, r, http.StatusInternalServerError,
			apperrors.ErrCodeInternalError, "An error occurred. Please try again later.")
		return
	}

	logger.ContextWithLogAttrs(r.Context(), slog.String("account_id", details.AccountID))

	responses.RespondWithJSON(w, http.StatusOK, map[string]string{
		"account_id": details.AccountID,
		"role":       details.Role,
	})
}

// HandleLogout clears the session cookies and revokes the session upstream
func (h *HandlerService) HandleLogout(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	// best effort - local cookies are cleared even if the upstream call fails
	if err := h.clientFor(r).Logout(); err != nil {
		reqLogger.Warn("upstream logout failed", slog.String("error", err.Error()))
	}

	h.AuthService.ClearAuthCookies(w)
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}
