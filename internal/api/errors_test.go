package api

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewStatusError(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantKind    ErrorKind
		wantMessage string
	}{
		{
			name:        "rate limited ignores body",
			statusCode:  http.StatusTooManyRequests,
			body:        `{"error": "slow down"}`,
			wantKind:    KindRateLimited,
			wantMessage: "Too many requests. Please wait a moment and try again.",
		},
		{
			name:        "payload too large ignores body",
			statusCode:  http.StatusRequestEntityTooLarge,
			body:        `{"error": "too big"}`,
			wantKind:    KindPayloadTooLarge,
			wantMessage: "The upload is too large. Please try a smaller file.",
		},
		{
			name:        "backend error string passes through",
			statusCode:  http.StatusBadRequest,
			body:        `{"error": "event title already in use"}`,
			wantKind:    KindAPI,
			wantMessage: "event title already in use",
		},
		{
			name:        "backend message string passes through",
			statusCode:  http.StatusConflict,
			body:        `{"message": "booking slot no longer available"}`,
			wantKind:    KindAPI,
			wantMessage: "booking slot no longer available",
		},
		{
			name:        "field-keyed validation errors joined and sorted",
			statusCode:  http.StatusUnprocessableEntity,
			body:        `{"phone": "is required", "email": "is invalid"}`,
			wantKind:    KindAPI,
			wantMessage: "email: is invalid; phone: is required",
		},
		{
			name:        "error string wins over field map",
			statusCode:  http.StatusBadRequest,
			body:        `{"error": "validation failed", "email": "is invalid"}`,
			wantKind:    KindAPI,
			wantMessage: "validation failed",
		},
		{
			name:        "not found with empty body",
			statusCode:  http.StatusNotFound,
			body:        "",
			wantKind:    KindNotFound,
			wantMessage: "The requested resource could not be found.",
		},
		{
			name:        "not found with backend message keeps kind",
			statusCode:  http.StatusNotFound,
			body:        `{"error": "event does not exist"}`,
			wantKind:    KindNotFound,
			wantMessage: "event does not exist",
		},
		{
			name:        "unauthorized falls back to session message",
			statusCode:  http.StatusUnauthorized,
			body:        "",
			wantKind:    KindAPI,
			wantMessage: "Your session is no longer valid. Please log in again.",
		},
		{
			name:        "server error with unparseable body",
			statusCode:  http.StatusInternalServerError,
			body:        "<html>Internal Server Error</html>",
			wantKind:    KindAPI,
			wantMessage: "The service is temporarily unavailable. Please try again later.",
		},
		{
			name:        "unknown status gets generic message",
			statusCode:  http.StatusTeapot,
			body:        "",
			wantKind:    KindAPI,
			wantMessage: "An error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := newStatusError(tt.statusCode, []byte(tt.body))

			if apiErr.Kind != tt.wantKind {
				t.Errorf("got kind %q, want %q", apiErr.Kind, tt.wantKind)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("got message %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("got status %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if string(apiErr.RawBody) != tt.body {
				t.Errorf("raw body not retained: got %q", apiErr.RawBody)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(newStatusError(http.StatusNotFound, nil)) {
		t.Error("expected 404 error to be recognized as not found")
	}
	if IsNotFound(newStatusError(http.StatusForbidden, nil)) {
		t.Error("403 error should not be recognized as not found")
	}
	if IsNotFound(errors.New("plain error")) {
		t.Error("non-APIError should not be recognized as not found")
	}
}

func TestConnectionErrorMessages(t *testing.T) {
	apiErr := NewConnectionError(errors.New("dial tcp: connection refused"))

	if apiErr.Kind != KindConnection {
		t.Errorf("got kind %q, want %q", apiErr.Kind, KindConnection)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("connection errors should have status 0, got %d", apiErr.StatusCode)
	}
	// The user-facing message must not leak transport details
	if apiErr.UserError() != "Unable to connect. Please check your internet connection and try again." {
		t.Errorf("unexpected user message: %q", apiErr.UserError())
	}
	// The log message must retain them
	if apiErr.Error() == apiErr.UserError() {
		t.Error("log message should carry the underlying error, not the user message")
	}
}
