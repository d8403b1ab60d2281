package memory

import (
	"context"
	"sync"

	"github.com/iudanet/carscope/internal/client/storage"
)

// Storage is an in-memory KVStore. Data lives until the process exits.
type Storage struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Remove deletes key
func (s *Storage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

// Close is a no-op, present so memory storage can replace file backends
func (s *Storage) Close() error {
	return nil
}
