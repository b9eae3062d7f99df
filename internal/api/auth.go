package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

var errMissingRefreshCookie = errors.New("refresh token cookie not found in API response")

// LoginRequest carries the credentials forwarded verbatim to the platform login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// refreshTokenCookieName is the cookie the platform API uses to rotate refresh tokens
const refreshTokenCookieName = "refresh_token"

// Login authenticates a user with the platform API.
// Returns the access token details and the refresh token cookie set by the API.
func (c *Client) Login(email, password string) (*types.AccessTokenDetails, *http.Cookie, error) {
	payload := JSON(LoginRequest{Email: email, Password: password})

	body, err := payload.encode()
	if err != nil {
		return nil, nil, NewInternalError(err, "marshaling login request")
	}

	req, err := http.NewRequest("POST", c.baseURL+"/auth/login", body)
	if err != nil {
		return nil, nil, NewInternalError(err, "creating login request")
	}
	req.Header.Set("Content-Type", payload.contentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, NewConnectionError(err)
	}
	defer res.Body.Close()

	details, cookie, err := decodeTokenResponse(res)
	if err != nil {
		return nil, nil, err
	}
	return details, cookie, nil
}

// RefreshToken exchanges the refresh token cookie for a fresh access token.
// The browser's refresh cookie is forwarded to the API and the rotated cookie is returned.
func (c *Client) RefreshToken(refreshTokenCookie *http.Cookie) (*types.AccessTokenDetails, *http.Cookie, error) {
	req, err := http.NewRequest("POST", c.baseURL+"/auth/token?grant_type=refresh_token", nil)
	if err != nil {
		return nil, nil, NewInternalError(err, "creating token refresh request")
	}
	req.AddCookie(refreshTokenCookie)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, NewConnectionError(err)
	}
	defer res.Body.Close()

	return decodeTokenResponse(res)
}

// Logout revokes the session on the platform side
func (c *Client) Logout() error {
	_, err := c.Post("/auth/logout", nil)
	return err
}

func decodeTokenResponse(res *http.Response) (*types.AccessTokenDetails, *http.Cookie, error) {
	if res.StatusCode != http.StatusOK {
		data := readBody(res)
		return nil, nil, newStatusError(res.StatusCode, data)
	}

	var details types.AccessTokenDetails
	if err := decodeInto(res, &details); err != nil {
		return nil, nil, err
	}

	var refreshCookie *http.Cookie
	for _, cookie := range res.Cookies() {
		if cookie.Name == refreshTokenCookieName {
			refreshCookie = cookie
			break
		}
	}
	if refreshCookie == nil {
		return nil, nil, NewInternalError(errMissingRefreshCookie, "extracting refresh token cookie from response")
	}

	return &details, refreshCookie, nil
}

func readBody(res *http.Response) []byte {
	data, _ := io.ReadAll(res.Body)
	return data
}

func decodeInto(res *http.Response, v any) error {
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return NewInternalError(err, "decoding response body")
	}
	return nil
}
