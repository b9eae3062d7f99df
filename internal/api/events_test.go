package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// Only filters the caller actually set may appear in the query string: the backend
// treats a present-but-empty key differently from an absent one.
func TestListEventsFilterEncoding(t *testing.T) {
	isVirtual := true

	tests := []struct {
		name      string
		filters   types.EventFilters
		wantQuery string
	}{
		{
			name:      "no filters sends no query",
			filters:   types.EventFilters{},
			wantQuery: "",
		},
		{
			name:      "status only",
			filters:   types.EventFilters{Status: types.EventStatusUpcoming},
			wantQuery: "status=upcoming",
		},
		{
			name:      "boolean filter rendered as literal true",
			filters:   types.EventFilters{Status: types.EventStatusUpcoming, IsVirtual: &isVirtual},
			wantQuery: "is_virtual=true&status=upcoming",
		},
		{
			name:      "search only",
			filters:   types.EventFilters{Search: "golang"},
			wantQuery: "search=golang",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				w.Write([]byte(`[]`))
			}))
			defer server.Close()

			client := NewClient(server.URL, StaticToken("token"))
			if _, err := client.ListEvents(tt.filters); err != nil {
				t.Fatalf("ListEvents failed: %v", err)
			}

			if gotQuery != tt.wantQuery {
				t.Errorf("got query %q, want %q", gotQuery, tt.wantQuery)
			}
		})
	}
}

func TestCreateEventPayloadBranch(t *testing.T) {
	var gotContentType string
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"title": "Go workshop"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("token"))

	input := EventInput{
		Title:    "Go workshop",
		StartsAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC),
	}

	// no image -> plain JSON
	if _, err := client.CreateEvent(input); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("got content type %q, want application/json", gotContentType)
	}
	if gotMethod != http.MethodPost || gotPath != "/events/" {
		t.Errorf("got %s %s, want POST /events/", gotMethod, gotPath)
	}

	// image attached -> multipart
	input.Image = strings.NewReader("fake png bytes")
	input.ImageFilename = "banner.png"

	if _, err := client.CreateEvent(input); err != nil {
		t.Fatalf("CreateEvent with image failed: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Errorf("got content type %q, want multipart/form-data", gotContentType)
	}
}

func TestDeleteEventNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "event does not exist"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("token"))

	err := client.DeleteEvent("e1")
	if !IsNotFound(err) {
		t.Errorf("deleting a missing event should surface a not-found error, got %v", err)
	}
}
