package core

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12.345", 1235, false},
		{"12.344", 1234, false},
		{"35000", 3500000, false},
		{".5", 50, false},
		{"", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{"1.2.3", 0, true},
		{"abc", 0, true},
		{"1.٥", 0, true},
		{"1.٥٥", 0, true},
		{"١٢", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecimalToCents(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	tests := []struct {
		cents int64
		json  string
	}{
		{3500000, "35000"},
		{1250, "12.5"},
		{1234, "12.34"},
		{-25000, "-250"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(Money{Cents: tt.cents})
		if err != nil {
			t.Fatalf("marshal %d: %v", tt.cents, err)
		}
		if string(b) != tt.json {
			t.Errorf("marshal %d = %s, want %s", tt.cents, b, tt.json)
		}
		var m Money
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if m.Cents != tt.cents {
			t.Errorf("unmarshal %s = %d, want %d", b, m.Cents, tt.cents)
		}
	}
}

func TestMoneyUnmarshalRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{`"12"`, `null`, `true`} {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestMoneyUnmarshalRejectsOutOfRange(t *testing.T) {
	for _, in := range []string{"1e17", "1e20", "-1e20", "92233720368547758.08"} {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("%s: expected ErrInvalidAmount, got cents=%d err=%v", in, m.Cents, err)
		}
	}

	var m Money
	if err := json.Unmarshal([]byte("92233720368547758.07"), &m); err != nil || m.Cents != math.MaxInt64 {
		t.Errorf("largest amount: cents=%d err=%v", m.Cents, err)
	}
}

func TestMoneyUnmarshalRoundsHalfUp(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte("0.125"), &m); err != nil {
		t.Fatal(err)
	}
	if m.Cents != 13 {
		t.Fatalf("got %d, want 13", m.Cents)
	}
}

func TestNewMoney(t *testing.T) {
	if got := NewMoney(35000).Cents; got != 3500000 {
		t.Fatalf("got %d", got)
	}
	if got := NewMoney(0.1 + 0.2).Cents; got != 30 {
		t.Fatalf("got %d", got)
	}
}
