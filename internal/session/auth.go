package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/api/types"
	"github.com/mentorbridge/dashboard/internal/config"
)

// AuthService provides authentication and authorization services for the dashboard
type AuthService struct {
	apiClient   *api.Client
	environment string
}

// NewAuthService creates a new dashboard authentication service.
// The supplied client is used for login and token refresh calls against the platform API.
func NewAuthService(apiClient *api.Client, environment string) *AuthService {
	return &AuthService{
		apiClient:   apiClient,
		environment: environment,
	}
}

// TokenStatus represents the status of an access token used in a dashboard request
type TokenStatus int

const (
	TokenMissing TokenStatus = iota // no auth cookie present
	TokenInvalid
	TokenExpired
	TokenValid
)

var tokenStatusNames = []string{"TokenMissing", "TokenInvalid", "TokenExpired", "TokenValid"}

func (t TokenStatus) String() string {
	if t < 0 || int(t) >= len(tokenStatusNames) {
		return fmt.Sprintf("TokenStatus(%d)", int(t))
	}
	return tokenStatusNames[t]
}

// CheckTokenStatus inspects the access token held in the request's session cookie
func (a *AuthService) CheckTokenStatus(r *http.Request) TokenStatus {
	details, err := a.AccessTokenDetailsFromRequest(r)
	if err != nil {
		return TokenMissing
	}
	return a.CheckAccessTokenStatus(details)
}

// CheckAccessTokenStatus checks the status of an access token
func (a *AuthService) CheckAccessTokenStatus(details *types.AccessTokenDetails) TokenStatus {
	if details == nil {
		return TokenMissing
	}

	if details.AccessToken == "" {
		return TokenInvalid
	}

	// Parse token without validation to check expiry
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &jwt.RegisteredClaims{}

	_, _, err := parser.ParseUnverified(details.AccessToken, claims)
	if err != nil {
		return TokenInvalid
	}

	// Check if token is expired (in normal operations the browser will remove the expired cookie and this code will not be reached)
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return TokenExpired
	}

	return TokenValid
}

// Login authenticates against the platform API and returns the session material
func (a *AuthService) Login(email, password string) (*types.AccessTokenDetails, *http.Cookie, error) {
	return a.apiClient.Login(email, password)
}

// RefreshToken exchanges the browser's refresh token cookie for a fresh access token
func (a *AuthService) RefreshToken(refreshTokenCookie *http.Cookie) (*types.AccessTokenDetails, *http.Cookie, error) {
	return a.apiClient.RefreshToken(refreshTokenCookie)
}

// AccessTokenDetailsFromRequest decodes the access token details cookie
func (a *AuthService) AccessTokenDetailsFromRequest(r *http.Request) (*types.AccessTokenDetails, error) {
	cookie, err := r.Cookie(config.AccessTokenDetailsCookieName)
	if err != nil {
		return nil, fmt.Errorf("access token details cookie not found: %w", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode access token details cookie: %w", err)
	}

	var details types.AccessTokenDetails
	if err := json.Unmarshal(decoded, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal access token details: %w", err)
	}

	return &details, nil
}

// AccountInfoFromRequest returns the account information held in the session cookie
func (a *AuthService) AccountInfoFromRequest(r *http.Request) (*types.AccountInfo, error) {
	details, err := a.AccessTokenDetailsFromRequest(r)
	if err != nil {
		return nil, err
	}
	return &types.AccountInfo{
		AccountID: details.AccountID,
		Role:      details.Role,
	}, nil
}

// SetAuthCookies sets the authentication-related cookies in the dashboard HTTP response after authentication.
//
// The browser maintains authentication state via cookies so that any dashboard instance
// can authenticate the user, regardless of which instance handles each request.
//
// The following cookies are set:
//   - refresh token cookie (forwarded from the platform API)
//   - a cookie containing the access token details returned by the API
func (a *AuthService) SetAuthCookies(w http.ResponseWriter, details *types.AccessTokenDetails, refreshTokenCookie *http.Cookie) error {
	isProd := a.environment == "prod"

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal access token details: %w", err)
	}

	// Base64 encode to avoid cookie encoding issues
	encodedDetails := base64.StdEncoding.EncodeToString(detailsJSON)

	http.SetCookie(w, &http.Cookie{
		Name:     config.AccessTokenDetailsCookieName,
		Value:    encodedDetails,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   details.ExpiresIn,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     config.RefreshTokenCookieName,
		Value:    refreshTokenCookie.Value,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   refreshTokenCookie.MaxAge,
	})

	return nil
}

// ClearAuthCookies clears all authentication-related cookies
func (a *AuthService) ClearAuthCookies(w http.ResponseWriter) {
	isProd := a.environment == "prod"

	http.SetCookie(w, &http.Cookie{
		Name:     config.AccessTokenDetailsCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     config.RefreshTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})
}
