package session

import "testing"

func TestStoreTokenLifecycle(t *testing.T) {
	store := NewStore()

	if token, ok := store.Token(); ok || token != "" {
		t.Errorf("new store should hold no token, got (%q, %v)", token, ok)
	}

	store.Set("access-token-1")
	if token, ok := store.Token(); !ok || token != "access-token-1" {
		t.Errorf("got (%q, %v), want (access-token-1, true)", token, ok)
	}

	// a refresh overwrites in place
	store.Set("access-token-2")
	if token, _ := store.Token(); token != "access-token-2" {
		t.Errorf("got %q, want access-token-2", token)
	}

	store.Clear()
	if token, ok := store.Token(); ok || token != "" {
		t.Errorf("cleared store should hold no token, got (%q, %v)", token, ok)
	}
}
