package core

import (
	"errors"
	"testing"
)

func TestTransactionFormParse(t *testing.T) {
	f := TransactionForm{
		Amount:      " 1,234.50 ",
		Type:        "Expense",
		Category:    " expense-food ",
		Description: " lunch ",
		Date:        "2024-08-10",
	}
	// Comma is read as the decimal separator, so "1,234.50" has two.
	if _, err := f.Parse(); err == nil {
		t.Fatal("expected error for two separators")
	}

	f.Amount = "12,50"
	in, err := f.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if in.Amount.Cents != 1250 || in.Type != Expense || in.Category != "expense-food" || in.Description != "lunch" {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestTransactionFormParseReportsAllFields(t *testing.T) {
	_, err := TransactionForm{Amount: "abc", Type: "gift", Date: "10/08/2024"}.Parse()

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	want := map[string]string{
		"amount":   "amount must be a positive number",
		"type":     "type must be income or expense",
		"category": "category is required",
		"date":     "date must be in YYYY-MM-DD format",
	}
	for field, msg := range want {
		if fe[field] != msg {
			t.Errorf("field %s = %q, want %q", field, fe[field], msg)
		}
	}
}
