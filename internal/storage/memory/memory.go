// Package memory is an in-process Storage used by tests and by
// DATA_BACKEND=memory runs. Nothing survives a restart.
package memory

import (
	"context"
	"sync"
)

type Storage struct {
	mu   sync.Mutex
	data map[string]string
}

func New() *Storage {
	return &Storage{data: make(map[string]string)}
}

// Get implements store.Storage.
func (s *Storage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set implements store.Storage.
func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Ping always succeeds.
func (s *Storage) Ping(context.Context) error { return nil }
