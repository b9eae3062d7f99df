// Package session manages the dashboard's authentication state: the in-process token
// store read by the API client on every request, and the cookies that persist the
// session between browser requests.
package session

import "sync"

// Store holds the current access token. It is written only by the login/logout flow
// and read by the API client at call time, so a token change is observed on the very
// next request without re-instantiating the client.
type Store struct {
	mu    sync.RWMutex
	token string
}

func NewStore() *Store {
	return &Store{}
}

// Set stores a new access token after login or refresh
func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the stored token at logout
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Token implements api.TokenSource
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}
