// Package handlers implements the dashboard's ui-api endpoints. Handlers are thin:
// they parse request input, call one platform API client method, and write the result
// as JSON. All error recovery and display decisions stay here in the consumer layer;
// the client layer only normalizes and rethrows.
package handlers

import (
	"io"
	"net/http"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/responses"
	"github.com/mentorbridge/dashboard/internal/session"
)

// maxMemoryBytes bounds the in-memory portion of parsed multipart forms;
// larger file parts spill to disk
const maxMemoryBytes = 10 << 20

// HandlerService holds the shared dependencies for all dashboard handlers
type HandlerService struct {
	ApiClient   *api.Client
	AuthService *session.AuthService
	Environment string
}

// clientFor returns a request-scoped copy of the API client bound to the caller's
// session token. The copy shares the underlying transport.
func (h *HandlerService) clientFor(r *http.Request) *api.Client {
	token, _ := session.AccessTokenFromContext(r.Context())
	return h.ApiClient.WithTokenSource(api.StaticToken(token))
}

// closeUpload releases a parsed multipart upload once the upstream call has finished.
// Large uploads spill to disk, so leaving them open leaks file descriptors.
func closeUpload(r io.Reader) {
	if closer, ok := r.(io.Closer); ok {
		closer.Close()
	}
}

// respondAPIError translates a normalized client error into the dashboard's JSON error shape
func respondAPIError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := err.(*api.APIError)
	if !ok {
		responses.RespondWithError(w, r, http.StatusInternalServerError,
			apperrors.ErrCodeInternalError, "An error occurred. Please try again later.")
		return
	}

	switch apiErr.Kind {
	case api.KindConnection:
		responses.RespondWithError(w, r, http.StatusBadGateway,
			apperrors.ErrCodeBackendUnavailable, apiErr.UserError())
	case api.KindRateLimited:
		responses.RespondWithError(w, r, http.StatusTooManyRequests,
			apperrors.ErrCodeRateLimitExceeded, apiErr.UserError())
	case api.KindPayloadTooLarge:
		responses.RespondWithError(w, r, http.StatusRequestEntityTooLarge,
			apperrors.ErrCodeRequestTooLarge, apiErr.UserError())
	case api.KindNotFound:
		responses.RespondWithError(w, r, http.StatusNotFound,
			apperrors.ErrCodeResourceNotFound, apiErr.UserError())
	case api.KindInternal:
		responses.RespondWithError(w, r, http.StatusInternalServerError,
			apperrors.ErrCodeInternalError, apiErr.UserError())
	default:
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		responses.RespondWithError(w, r, status,
			apperrors.ErrCodeUpstreamError, apiErr.UserError())
	}
}
