// Package api implements the HTTP client used by the dashboard to call the
// mentorbridge platform API.
//
// Every request failure is normalized into an *APIError so that callers see one
// predictable error shape regardless of endpoint. The error carries a user-friendly
// message for display and retains the raw response body for logging.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorKind classifies a normalized request failure
type ErrorKind string

const (
	KindConnection      ErrorKind = "connection"        // no response received
	KindInternal        ErrorKind = "internal"          // request could not be built or response could not be decoded
	KindRateLimited     ErrorKind = "rate_limited"      // 429
	KindPayloadTooLarge ErrorKind = "payload_too_large" // 413
	KindNotFound        ErrorKind = "not_found"         // 404
	KindAPI             ErrorKind = "api"               // any other backend-reported error
)

// APIError represents an error encountered when communicating with the platform API.
// StatusCode 0 = network/connection or internal error, >0 = HTTP response received.
type APIError struct {
	Kind       ErrorKind `json:"kind"`
	StatusCode int       `json:"status_code"`
	Message    string    `json:"message"`
	RawBody    []byte    `json:"-"`
	LogMessage string    `json:"-"`
}

func (e *APIError) Error() string {
	if e.LogMessage != "" {
		return e.LogMessage
	}
	return e.Message
}

// UserError returns the user-friendly message
func (e *APIError) UserError() string {
	return e.Message
}

// IsNotFound reports whether err is an APIError for a missing remote resource.
// Callers use this to treat a delete of an already-removed resource as "already gone".
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindNotFound
}

// NewConnectionError creates an APIError for network/connection issues (no response received)
func NewConnectionError(err error) *APIError {
	return &APIError{
		Kind:       KindConnection,
		StatusCode: 0,
		Message:    "Unable to connect. Please check your internet connection and try again.",
		LogMessage: fmt.Sprintf("network error: %v", err),
	}
}

// NewInternalError creates an APIError for internal errors, supply the error and an explanation of what was being done when the error occurred
func NewInternalError(err error, while string) *APIError {
	return &APIError{
		Kind:       KindInternal,
		StatusCode: 0,
		Message:    "An error occurred. Please try again later.",
		LogMessage: fmt.Sprintf("internal error: %v while %v", err, while),
	}
}

// newStatusError normalizes a non-2xx response into an APIError.
//
// The message is chosen by an ordered chain of recognizers:
//  1. status codes with specific advice (429, 413)
//  2. a structured error body ("error" or "message" string, or a field-keyed validation object)
//  3. a generic status-derived message
func newStatusError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Kind:       KindAPI,
		StatusCode: statusCode,
		RawBody:    body,
		LogMessage: fmt.Sprintf("platform API status %d", statusCode),
	}

	switch statusCode {
	case http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimited
		apiErr.Message = "Too many requests. Please wait a moment and try again."
		return apiErr
	case http.StatusRequestEntityTooLarge:
		apiErr.Kind = KindPayloadTooLarge
		apiErr.Message = "The upload is too large. Please try a smaller file."
		return apiErr
	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
	}

	if msg := extractErrorMessage(body); msg != "" {
		apiErr.Message = msg
		apiErr.LogMessage = fmt.Sprintf("platform API status %d - %s", statusCode, msg)
		return apiErr
	}

	switch statusCode {
	case http.StatusUnauthorized:
		apiErr.Message = "Your session is no longer valid. Please log in again."
	case http.StatusForbidden:
		apiErr.Message = "You don't have permission to access this resource."
	case http.StatusNotFound:
		apiErr.Message = "The requested resource could not be found."
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		apiErr.Message = "The service is temporarily unavailable. Please try again later."
	default:
		apiErr.Message = "An error occurred. Please try again."
	}

	return apiErr
}

// extractErrorMessage pulls a human-readable message out of a structured error body.
//
// The backend uses two conventions: a plain string under "error" or "message", and a
// field-keyed validation object ({"email": "is invalid", "phone": "is required"}).
// String fields win; a validation object is joined into "field: message" pairs.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}

	for _, key := range []string{"error", "message"} {
		if val, ok := raw[key]; ok {
			var s string
			if err := json.Unmarshal(val, &s); err == nil && s != "" {
				return s
			}
		}
	}

	// field-keyed validation errors: join as "field: message" pairs, sorted for stable output
	pairs := make([]string, 0, len(raw))
	for field, val := range raw {
		var msg string
		if err := json.Unmarshal(val, &msg); err != nil || msg == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s: %s", field, msg))
	}
	if len(pairs) == 0 {
		return ""
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "; ")
}
