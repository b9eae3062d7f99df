package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mentorbridge/dashboard/internal/config"
	"github.com/mentorbridge/dashboard/internal/logger"
)

type contextKey struct {
	name string
}

var accessTokenKey = contextKey{"access_token"}

// ContextWithAccessToken stores the request's bearer token for downstream handlers
func ContextWithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessTokenFromContext retrieves the bearer token placed in context by RequireAuth
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	return token, ok
}

// RequireAuth is middleware that checks authentication and attempts token refresh if needed.
//
// This middleware ensures that:
//  1. All requests have valid authentication (401 if not)
//  2. Expired tokens are automatically refreshed when possible
//  3. Fresh cookies are set after token refresh for subsequent requests
//
// On success the access token is placed in the request context for handlers.
func (a *AuthService) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.ContextRequestLogger(r.Context())
		tokenStatus := a.CheckTokenStatus(r)

		switch tokenStatus {
		case TokenValid:
			details, err := a.AccessTokenDetailsFromRequest(r)
			if err != nil {
				redirectToLogin(w, r)
				return
			}
			ctx := ContextWithAccessToken(r.Context(), details.AccessToken)
			next.ServeHTTP(w, r.WithContext(ctx))
			return

		case TokenMissing, TokenInvalid:
			reqLogger.Debug("authentication failed - redirecting to login",
				slog.String("component", "session.RequireAuth"),
				slog.String("status", tokenStatus.String()),
			)
			redirectToLogin(w, r)
			return

		case TokenExpired:
			refreshTokenCookie, err := r.Cookie(config.RefreshTokenCookieName)
			if err != nil {
				reqLogger.Debug("no refresh token cookie - redirecting to login",
					slog.String("component", "session.RequireAuth"),
				)
				redirectToLogin(w, r)
				return
			}

			details, newRefreshTokenCookie, err := a.RefreshToken(refreshTokenCookie)
			if err != nil {
				reqLogger.Error("token refresh failed",
					slog.String("component", "session.RequireAuth"),
					slog.String("error", err.Error()),
				)
				redirectToLogin(w, r)
				return
			}

			if err := a.SetAuthCookies(w, details, newRefreshTokenCookie); err != nil {
				reqLogger.Error("failed to set authentication cookies after refresh",
					slog.String("component", "session.RequireAuth"),
					slog.String("error", err.Error()),
				)
				redirectToLogin(w, r)
				return
			}

			reqLogger.Debug("token refresh successful",
				slog.String("component", "session.RequireAuth"),
			)

			ctx := ContextWithAccessToken(r.Context(), details.AccessToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	})
}

// RequireRole is middleware that gates a route group to the named platform roles
// (institution, professional, beginner)
func (a *AuthService) RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		// a typo here is a route registration bug, caught at startup
		if !config.ValidRoles[role] {
			panic(fmt.Sprintf("RequireRole: unknown platform role %q", role))
		}
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := logger.ContextRequestLogger(r.Context())

			accountInfo, err := a.AccountInfoFromRequest(r)
			if err != nil {
				reqLogger.Error("could not get account info from cookie",
					slog.String("component", "session.RequireRole"),
					slog.String("error", err.Error()),
				)
				redirectToAccessDenied(w, r)
				return
			}

			if !allowed[accountInfo.Role] {
				reqLogger.Debug("access denied - account role not permitted",
					slog.String("component", "session.RequireRole"),
					slog.String("account_id", accountInfo.AccountID),
					slog.String("role", accountInfo.Role),
				)
				redirectToAccessDenied(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func redirectToAccessDenied(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	http.Redirect(w, r, "/access-denied", http.StatusSeeOther)
}
