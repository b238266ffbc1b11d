package store

import (
	"testing"

	"expense-tracker/internal/core"
)

func tx(id string, cents int64) core.Transaction {
	return core.Transaction{ID: id, Amount: core.Money{Cents: cents}, Type: core.Expense, Category: "c", Date: "2024-08-10"}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	base := State{
		Transactions: []core.Transaction{tx("a", 100), tx("b", 200)},
		Categories:   []core.Category{{ID: "c1", Name: "Food", Type: core.Expense}},
	}

	actions := []struct {
		name   string
		action Action
	}{
		{"add transaction", AddTransaction{Transaction: tx("z", 1)}},
		{"update transaction", UpdateTransaction{ID: "a", Transaction: tx("a", 999)}},
		{"delete transaction", DeleteTransaction{ID: "b"}},
		{"set transactions", SetTransactions{Transactions: []core.Transaction{tx("q", 5)}}},
		{"add category", AddCategory{Category: core.Category{ID: "c2", Name: "Fun", Type: core.Expense}}},
		{"update category", UpdateCategory{ID: "c1", Category: core.Category{ID: "c1", Name: "Meals", Type: core.Expense}}},
		{"delete category", DeleteCategory{ID: "c1"}},
	}

	for _, tt := range actions {
		t.Run(tt.name, func(t *testing.T) {
			_ = Reduce(base, tt.action)
			if base.Transactions[0].Amount.Cents != 100 || base.Transactions[1].ID != "b" || len(base.Transactions) != 2 {
				t.Fatalf("input transactions changed: %+v", base.Transactions)
			}
			if len(base.Categories) != 1 || base.Categories[0].Name != "Food" {
				t.Fatalf("input categories changed: %+v", base.Categories)
			}
		})
	}
}

func TestReduceOrdering(t *testing.T) {
	s := State{}
	s = Reduce(s, AddTransaction{Transaction: tx("first", 1)})
	s = Reduce(s, AddTransaction{Transaction: tx("second", 1)})
	if s.Transactions[0].ID != "second" || s.Transactions[1].ID != "first" {
		t.Errorf("transactions should be newest first, got %v", s.Transactions)
	}

	s = Reduce(s, AddCategory{Category: core.Category{ID: "one"}})
	s = Reduce(s, AddCategory{Category: core.Category{ID: "two"}})
	if s.Categories[0].ID != "one" || s.Categories[1].ID != "two" {
		t.Errorf("categories should keep insertion order, got %v", s.Categories)
	}
}

func TestReduceUpdateAndDelete(t *testing.T) {
	s := State{Transactions: []core.Transaction{tx("a", 1), tx("b", 2), tx("c", 3)}}

	s = Reduce(s, UpdateTransaction{ID: "b", Transaction: tx("b", 20)})
	if s.Transactions[1].Amount.Cents != 20 {
		t.Errorf("update should replace in place, got %v", s.Transactions)
	}

	s = Reduce(s, UpdateTransaction{ID: "missing", Transaction: tx("missing", 7)})
	if len(s.Transactions) != 3 {
		t.Errorf("update of unknown id should not add, got %v", s.Transactions)
	}

	s = Reduce(s, DeleteTransaction{ID: "a"})
	if len(s.Transactions) != 2 || s.Transactions[0].ID != "b" {
		t.Errorf("delete should keep the order of the rest, got %v", s.Transactions)
	}

	s = Reduce(s, DeleteTransaction{ID: "missing"})
	if len(s.Transactions) != 2 {
		t.Errorf("delete of unknown id should be a no-op, got %v", s.Transactions)
	}
}

func TestReduceSetNilGivesEmpty(t *testing.T) {
	s := Reduce(State{}, SetTransactions{})
	if s.Transactions == nil || len(s.Transactions) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", s.Transactions)
	}
	if got := Reduce(s, nil); len(got.Transactions) != 0 {
		t.Errorf("nil action should return state unchanged")
	}
}
