package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mentorbridge/dashboard/internal/api"
)

func bookingTestService(backendURL string) *HandlerService {
	return &HandlerService{
		ApiClient:   api.NewClient(backendURL, api.StaticToken("")),
		Environment: "test",
	}
}

// A PATCH must carry only the fields the form actually set, so a topic change does not
// clobber the booking's schedule.
func TestHandleUpdateBookingPartialForm(t *testing.T) {
	var gotBody map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("got method %s, want PATCH", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("could not decode update body: %v", err)
		}
		w.Write([]byte(`{"topic": "interview prep"}`))
	}))
	defer backend.Close()

	h := bookingTestService(backend.URL)
	router := chi.NewRouter()
	router.Patch("/ui-api/bookings/{bookingID}", h.HandleUpdateBooking)

	form := url.Values{"topic": {"interview prep"}}
	req := httptest.NewRequest("PATCH", "/ui-api/bookings/b1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if gotBody["topic"] != "interview prep" {
		t.Errorf("topic not forwarded: %v", gotBody)
	}
	for _, absent := range []string{"scheduled_at", "duration_mins", "mentor_id"} {
		if _, ok := gotBody[absent]; ok {
			t.Errorf("unset field %q must not appear in a partial update: %v", absent, gotBody)
		}
	}
}

func TestHandleCreateBookingValidation(t *testing.T) {
	backendCalled := false
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	h := bookingTestService(backend.URL)
	router := chi.NewRouter()
	router.Post("/ui-api/bookings", h.HandleCreateBooking)

	tests := []struct {
		name     string
		form     url.Values
		wantCode int
	}{
		{
			name: "complete form",
			form: url.Values{
				"mentor_id":     {"m1"},
				"topic":         {"go basics"},
				"scheduled_at":  {"2025-03-01T09:00:00Z"},
				"duration_mins": {"60"},
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "missing scheduled_at",
			form: url.Values{
				"mentor_id":     {"m1"},
				"duration_mins": {"60"},
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing duration",
			form: url.Values{
				"mentor_id":    {"m1"},
				"scheduled_at": {"2025-03-01T09:00:00Z"},
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "bad timestamp",
			form: url.Values{
				"mentor_id":     {"m1"},
				"scheduled_at":  {"tomorrow"},
				"duration_mins": {"60"},
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backendCalled = false

			req := httptest.NewRequest("POST", "/ui-api/bookings", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Errorf("got status %d, want %d: %s", rr.Code, tt.wantCode, rr.Body.String())
			}
			if tt.wantCode == http.StatusBadRequest && backendCalled {
				t.Error("invalid form must be rejected before calling the platform API")
			}
		})
	}
}
