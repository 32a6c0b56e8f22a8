// Package session keeps the single credential slot of the client.
//
// The slot holds at most one credential string. It is written on signup and
// login success, and cleared on logout or when the session guard finds the
// stored credential unusable. Writes overwrite; the last writer wins.
package session

import (
	"context"
	"sync"
)

// Store is the credential slot. Get returns "" when the slot is empty.
// Setting "" empties the slot. Clear is idempotent.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the slot in process memory. It lives as long as the
// process does, which is the terminal equivalent of a browser tab.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
