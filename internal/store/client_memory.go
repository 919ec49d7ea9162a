package store

import (
	"context"
	"sync"
)

// sessionMemoryStore keeps the session for the lifetime of the process only.
type sessionMemoryStore struct {
	mu      sync.RWMutex
	ownerID string
	token   string
}

// NewSessionMemoryStore returns a non-persistent [SessionStore].
func NewSessionMemoryStore() SessionStore {
	return &sessionMemoryStore{}
}

func (s *sessionMemoryStore) SetOwner(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerID = ownerID
	return nil
}

func (s *sessionMemoryStore) Owner(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ownerID == "" {
		return "", ErrLocalSessionNotFound
	}
	return s.ownerID, nil
}

func (s *sessionMemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *sessionMemoryStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *sessionMemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerID, s.token = "", ""
	return nil
}
