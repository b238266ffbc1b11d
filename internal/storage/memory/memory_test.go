package memory

import (
	"context"
	"errors"
	"testing"

	"expense-tracker/internal/storage"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("unexpected get: v=%q ok=%v err=%v", v, ok, err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 key, got %d", s.Len())
	}

	if err := s.Set(ctx, "", "x"); !errors.Is(err, storage.ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}

func TestMemoryStoreQuota(t *testing.T) {
	ctx := context.Background()
	s := NewWithQuota(10)

	if err := s.Set(ctx, "ab", "12345678"); err != nil {
		t.Fatalf("exactly at quota should fit: %v", err)
	}
	if err := s.Set(ctx, "c", "1"); !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	// Replacing a value only counts the new size.
	if err := s.Set(ctx, "ab", "1234"); err != nil {
		t.Fatalf("shrinking overwrite: %v", err)
	}
	if err := s.Set(ctx, "c", "1"); err != nil {
		t.Fatalf("after shrink: %v", err)
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	ctx := context.Background()
	s := NewFromMap(map[string]string{"k": "v"})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Get(ctx, "k"); !errors.Is(err, storage.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := s.Set(ctx, "k", "v"); !errors.Is(err, storage.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
