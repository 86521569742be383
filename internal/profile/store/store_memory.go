// Package store persists user display preferences consumed by the header.
package store

import (
	"context"
	"sync"
)

// InMemoryStore keeps preferences in a map. Used in development and tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	states map[string]string
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{states: make(map[string]string)}
}

func (s *InMemoryStore) PreferredState(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[userID], nil
}

// SetPreferredState stores state; an empty state clears the preference.
func (s *InMemoryStore) SetPreferredState(_ context.Context, userID, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == "" {
		delete(s.states, userID)
		return nil
	}
	s.states[userID] = state
	return nil
}
