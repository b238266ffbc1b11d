// Package storage defines the durable key-value contract the store persists
// its collections through, in the spirit of browser local storage: string
// keys, string values, whole-value reads and writes.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrQuotaExceeded is returned when a write would exceed a size-limited backend.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrClosed        = errors.New("storage closed")
	ErrEmptyKey      = errors.New("empty storage key")
)

// KV is durable local storage.
type KV interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	Close() error
}
