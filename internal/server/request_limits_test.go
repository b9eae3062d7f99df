package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestRequestSizeLimits(t *testing.T) {
	// Router with the same two-tier limit structure the dashboard uses
	router := chi.NewRouter()

	// plain ui-api routes with the 64KB limit
	router.Group(func(r chi.Router) {
		r.Use(RequestSizeLimit(64 * 1024))
		r.Post("/ui-api/bookings", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	// upload routes with the 10MB limit
	router.Group(func(r chi.Router) {
		r.Use(RequestSizeLimit(10 * 1024 * 1024))
		r.Post("/ui-api/events", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	tests := []struct {
		name     string
		path     string
		bodySize int64
		wantCode int
	}{
		{"normal api request", "/ui-api/bookings", 2 * 1024, http.StatusOK},
		{"oversized api request", "/ui-api/bookings", 128 * 1024, http.StatusRequestEntityTooLarge},
		{"normal upload", "/ui-api/events", 1024 * 1024, http.StatusOK},
		{"large upload within limit", "/ui-api/events", 8 * 1024 * 1024, http.StatusOK},
		{"oversized upload", "/ui-api/events", 12 * 1024 * 1024, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Repeat("x", int(tt.bodySize))
			req := httptest.NewRequest("POST", tt.path, bytes.NewReader([]byte(body)))
			req.ContentLength = tt.bodySize

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantCode)
			}

			if header := rr.Header().Get("Dashboard-Max-Request-Size"); header == "" {
				t.Error("Dashboard-Max-Request-Size header not set")
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	router := chi.NewRouter()
	router.Use(RateLimit(10, 5)) // 10 requests per second, burst of 5
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// requests within the burst succeed
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/healthz", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d within burst got status %d", i+1, rr.Code)
		}
	}

	// the next request exceeds the burst
	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("got status %d, want 429", rr.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	router := chi.NewRouter()
	router.Use(RateLimit(0, 0))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/healthz", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("rate limiting should be disabled, got status %d", rr.Code)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantHSTS    bool
	}{
		{"dev skips HSTS", "dev", false},
		{"prod sets HSTS", "prod", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Use(SecurityHeaders(tt.environment))
			router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/healthz", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("X-Content-Type-Options not set")
			}
			if rr.Header().Get("X-Frame-Options") != "DENY" {
				t.Error("X-Frame-Options not set")
			}
			gotHSTS := rr.Header().Get("Strict-Transport-Security") != ""
			if gotHSTS != tt.wantHSTS {
				t.Errorf("HSTS presence = %v, want %v", gotHSTS, tt.wantHSTS)
			}
		})
	}
}
