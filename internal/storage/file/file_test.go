package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"expense-tracker/internal/storage"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok, err := s.Get(ctx, "expense-transactions"); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	payload := `[{"id":"t1"}]`
	if err := s.Set(ctx, "expense-transactions", payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A second store over the same directory sees the value.
	s2, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok, err := s2.Get(ctx, "expense-transactions")
	if err != nil || !ok || got != payload {
		t.Fatalf("unexpected get: %q ok=%v err=%v", got, ok, err)
	}

	if _, err := os.Stat(filepath.Join(dir, "expense-transactions.json")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"a", "bb", "ccc"} {
		if err := s.Set(ctx, "k", v); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single file, got %d", len(entries))
	}
}

func TestFileStoreEscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "../escape", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json")); err == nil {
		t.Fatalf("key escaped the data directory")
	}
	if v, ok, _ := s.Get(ctx, "../escape"); !ok || v != "x" {
		t.Fatalf("escaped key not readable")
	}
}

func TestFileStoreClosed(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
	if err := s.Set(context.Background(), "k", "v"); !errors.Is(err, storage.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
