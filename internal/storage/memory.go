package storage

import (
	"context"
	"sync"

	"flashrecipe/internal/domain"
)

// Compile-time interface check.
var _ domain.KeyValue = (*MemoryKV)(nil)

// MemoryKV is an in-memory key-value store. Safe for concurrent access.
// Used in tests and wherever persistence is not wanted.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Read returns the value under key, or domain.ErrNotFound.
func (s *MemoryKV) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Write stores value under key. Overwrites if it already exists.
func (s *MemoryKV) Write(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

// Delete removes a key. Absent keys are ignored.
func (s *MemoryKV) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
