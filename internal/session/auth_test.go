package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mentorbridge/dashboard/internal/api/types"
	"github.com/mentorbridge/dashboard/internal/config"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "account-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return token
}

func TestCheckAccessTokenStatus(t *testing.T) {
	authService := NewAuthService(nil, "test")

	tests := []struct {
		name    string
		details *types.AccessTokenDetails
		want    TokenStatus
	}{
		{
			name:    "nil details",
			details: nil,
			want:    TokenMissing,
		},
		{
			name:    "empty access token",
			details: &types.AccessTokenDetails{},
			want:    TokenInvalid,
		},
		{
			name:    "garbage token",
			details: &types.AccessTokenDetails{AccessToken: "not-a-jwt"},
			want:    TokenInvalid,
		},
		{
			name:    "expired token",
			details: &types.AccessTokenDetails{AccessToken: signedToken(t, time.Now().Add(-time.Hour))},
			want:    TokenExpired,
		},
		{
			name:    "valid token",
			details: &types.AccessTokenDetails{AccessToken: signedToken(t, time.Now().Add(time.Hour))},
			want:    TokenValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authService.CheckAccessTokenStatus(tt.details); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// Cookies written by SetAuthCookies must decode back to the same session details
// on the next request.
func TestAuthCookieRoundTrip(t *testing.T) {
	authService := NewAuthService(nil, "dev")

	details := &types.AccessTokenDetails{
		AccessToken: signedToken(t, time.Now().Add(time.Hour)),
		TokenType:   "Bearer",
		ExpiresIn:   1800,
		AccountID:   "account-1",
		Role:        "professional",
	}
	refreshCookie := &http.Cookie{Name: config.RefreshTokenCookieName, Value: "refresh-1", MaxAge: 86400}

	rec := httptest.NewRecorder()
	if err := authService.SetAuthCookies(rec, details, refreshCookie); err != nil {
		t.Fatalf("SetAuthCookies failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/ui-api/profile", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	decoded, err := authService.AccessTokenDetailsFromRequest(req)
	if err != nil {
		t.Fatalf("could not decode session cookie: %v", err)
	}
	if decoded.AccessToken != details.AccessToken {
		t.Error("access token did not survive the cookie round trip")
	}
	if decoded.AccountID != "account-1" || decoded.Role != "professional" {
		t.Errorf("account info mangled: %+v", decoded)
	}

	if status := authService.CheckTokenStatus(req); status != TokenValid {
		t.Errorf("got token status %v, want TokenValid", status)
	}

	accountInfo, err := authService.AccountInfoFromRequest(req)
	if err != nil {
		t.Fatalf("AccountInfoFromRequest failed: %v", err)
	}
	if accountInfo.Role != "professional" {
		t.Errorf("got role %q, want professional", accountInfo.Role)
	}
}

func TestClearAuthCookies(t *testing.T) {
	authService := NewAuthService(nil, "dev")

	rec := httptest.NewRecorder()
	authService.ClearAuthCookies(rec)

	cleared := map[string]bool{}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 && cookie.Value == "" {
			cleared[cookie.Name] = true
		}
	}

	if !cleared[config.AccessTokenDetailsCookieName] {
		t.Error("access token details cookie not cleared")
	}
	if !cleared[config.RefreshTokenCookieName] {
		t.Error("refresh token cookie not cleared")
	}
}
