package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the session's bearer token. It is consulted on every request,
// never at client construction, so a login, logout or token refresh is observed on
// the very next call.
type TokenSource interface {
	Token() (string, bool)
}

// StaticToken is a fixed-token TokenSource, used for request-scoped client copies
// in the web tier where the token comes from the caller's session cookie.
type StaticToken string

func (t StaticToken) Token() (string, bool) {
	return string(t), t != ""
}

// Client handles communication with the mentorbridge platform API.
//
// One client instance is shared by all service methods. Requests are single-attempt
// and fail fast: no retries, no caching, no deduplication.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	defaultHeaders map[string]string
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the transport timeout after which a hung request is abandoned
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client (used by tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithDefaultHeader adds a header sent on every request
func WithDefaultHeader(name, value string) Option {
	return func(c *Client) {
		c.defaultHeaders[name] = value
	}
}

func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		tokens:         tokens,
		defaultHeaders: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTokenSource returns a copy of the client bound to a different token source.
// The underlying transport is shared, so per-request copies are cheap.
func (c *Client) WithTokenSource(tokens TokenSource) *Client {
	clone := *c
	clone.tokens = tokens
	return &clone
}

// Response is the normalized result of a successful (2xx) request
type Response struct {
	Data   []byte
	Status int
}

// Decode unmarshals the JSON response body into v
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return NewInternalError(err, "decoding response body")
	}
	return nil
}

func (c *Client) Get(path string, query url.Values) (*Response, error) {
	return c.do(http.MethodGet, path, nil, query)
}

func (c *Client) Post(path string, payload Payload) (*Response, error) {
	return c.do(http.MethodPost, path, payload, nil)
}

func (c *Client) Put(path string, payload Payload) (*Response, error) {
	return c.do(http.MethodPut, path, payload, nil)
}

func (c *Client) Patch(path string, payload Payload) (*Response, error) {
	return c.do(http.MethodPatch, path, payload, nil)
}

func (c *Client) Delete(path string) (*Response, error) {
	return c.do(http.MethodDelete, path, nil, nil)
}

// do issues a single request and normalizes the outcome.
//
// The bearer token is read from the token source here, at call time. If no token is
// present the request is sent unauthenticated and the backend's rejection is surfaced
// unchanged.
func (c *Client) do(method, path string, payload Payload, query url.Values) (*Response, error) {
	var body io.Reader
	var contentType string

	if payload != nil {
		encoded, err := payload.encode()
		if err != nil {
			return nil, NewInternalError(err, fmt.Sprintf("encoding %s %s body", method, path))
		}
		body = encoded
		contentType = payload.contentType()
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, NewInternalError(err, fmt.Sprintf("creating %s %s request", method, path))
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	for name, value := range c.defaultHeaders {
		req.Header.Set(name, value)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewConnectionError(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, NewInternalError(err, fmt.Sprintf("reading %s %s response", method, path))
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newStatusError(res.StatusCode, data)
	}

	return &Response{Data: data, Status: res.StatusCode}, nil
}
