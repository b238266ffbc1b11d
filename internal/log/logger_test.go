package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTagsComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: slog.LevelInfo, Component: ComponentStore, Output: buf})

	logger.Info("transaction added", FieldTransactionID, "t1")

	out := buf.String()
	if !strings.Contains(out, "component=store") {
		t.Errorf("expected component in output, got: %s", out)
	}
	if !strings.Contains(out, "transaction_id=t1") {
		t.Errorf("expected field in output, got: %s", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: slog.LevelDebug, Format: "json", Output: buf})

	logger.Debug("hello")

	if !strings.Contains(buf.String(), `"component":"app"`) {
		t.Errorf("expected JSON output with default component, got: %s", buf.String())
	}
}

func TestLevelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: slog.LevelWarn, Output: buf})

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got: %s", buf.String())
	}
	logger.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected warn output")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Output: buf})
	ctx := WithContext(context.Background(), logger)

	FromContext(ctx, ComponentStorage).Info("from context")

	if !strings.Contains(buf.String(), "component=storage") {
		t.Errorf("expected stored logger with new component, got: %s", buf.String())
	}

	if l := FromContext(context.Background(), ComponentStorage); l.Component() != ComponentStorage {
		t.Errorf("fallback logger component = %q", l.Component())
	}
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithOperation(OpPersist).
		WithKey("expense-transactions").
		WithError(errors.New("quota exceeded"))

	if len(f.ToSlice()) != 6 {
		t.Fatalf("expected 3 key/value pairs, got %v", f.ToSlice())
	}
	if f[FieldError] != "quota exceeded" {
		t.Errorf("error field = %v", f[FieldError])
	}
	if NewFields().WithError(nil)[FieldError] != nil {
		t.Errorf("nil error should not be recorded")
	}
}
