// Package memory is a process-local storage.KV, optionally size limited the
// way browser local storage is.
package memory

import (
	"context"
	"fmt"
	"sync"

	"expense-tracker/internal/storage"
)

type Store struct {
	mu     sync.Mutex
	items  map[string]string
	quota  int // bytes across keys and values, 0 = unlimited
	closed bool
}

// New returns an unlimited store.
func New() *Store {
	return NewWithQuota(0)
}

// NewWithQuota returns a store that rejects writes once keys plus values
// would exceed quota bytes.
func NewWithQuota(quota int) *Store {
	return &Store{items: make(map[string]string), quota: quota}
}

// NewFromMap seeds a store, e.g. with payloads written by another backend.
func NewFromMap(seed map[string]string) *Store {
	s := New()
	for k, v := range seed {
		s.items[k] = v
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, storage.ErrClosed
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	if s.quota > 0 {
		used := s.usedLocked() - s.sizeLocked(key) + len(key) + len(value)
		if used > s.quota {
			return fmt.Errorf("set %q (%d bytes): %w", key, len(value), storage.ErrQuotaExceeded)
		}
	}
	s.items[key] = value
	return nil
}

// Len reports how many keys are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) usedLocked() int {
	n := 0
	for k, v := range s.items {
		n += len(k) + len(v)
	}
	return n
}

func (s *Store) sizeLocked(key string) int {
	v, ok := s.items[key]
	if !ok {
		return 0
	}
	return len(key) + len(v)
}

var _ storage.KV = (*Store)(nil)
