package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginRoundTrip(t *testing.T) {
	var gotContentType string
	var gotRequest LoginRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("could not decode login body: %v", err)
		}

		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "refresh-1", MaxAge: 86400})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "token-1",
			"token_type": "Bearer",
			"expires_in": 1800,
			"account_id": "account-1",
			"role": "professional"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))

	details, refreshCookie, err := client.Login("mentor@example.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// the content type comes from the payload variant, same as every other request
	if gotContentType != JSON(nil).contentType() {
		t.Errorf("got content type %q, want %q", gotContentType, JSON(nil).contentType())
	}
	if gotRequest.Email != "mentor@example.com" || gotRequest.Password != "secret" {
		t.Errorf("credentials mangled: %+v", gotRequest)
	}

	if details.AccessToken != "token-1" || details.Role != "professional" {
		t.Errorf("token details mangled: %+v", details)
	}
	if refreshCookie == nil || refreshCookie.Value != "refresh-1" {
		t.Errorf("refresh cookie not extracted: %+v", refreshCookie)
	}
}

func TestLoginMissingRefreshCookie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "token-1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))

	_, _, err := client.Login("mentor@example.com", "secret")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Kind != KindInternal {
		t.Errorf("got kind %q, want %q", apiErr.Kind, KindInternal)
	}
}

func TestLoginRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))

	_, _, err := client.Login("mentor@example.com", "wrong")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", apiErr.StatusCode)
	}
	if apiErr.UserError() != "invalid credentials" {
		t.Errorf("got message %q, want the backend's error string", apiErr.UserError())
	}
}
