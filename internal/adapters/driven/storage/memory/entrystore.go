// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and ephemeral sessions.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
)

// Ensure EntryStore implements the interface.
var _ driven.EntryStore = (*EntryStore)(nil)

// EntryStore is an in-memory implementation of driven.EntryStore.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewEntryStore creates a new in-memory entry store.
func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make(map[string]string)}
}

// GetEntry retrieves the value stored under key.
func (s *EntryStore) GetEntry(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// PutEntry stores value under key, replacing any previous value.
func (s *EntryStore) PutEntry(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// DeleteEntry removes the entry under key.
func (s *EntryStore) DeleteEntry(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Close releases nothing; the store lives in process memory.
func (s *EntryStore) Close() error {
	return nil
}

// Len returns the number of stored entries. Useful for tests.
func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
