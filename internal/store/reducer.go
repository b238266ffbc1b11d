package store

import (
	"slices"

	"expense-tracker/internal/core"
)

// State is one immutable snapshot of the collections. Reduce never writes
// into a State it was given, so a snapshot handed out earlier stays valid.
type State struct {
	Transactions []core.Transaction
	Categories   []core.Category
}

// Action is a state transition understood by Reduce.
type Action interface {
	apply(State) State
}

type (
	SetTransactions struct{ Transactions []core.Transaction }
	// AddTransaction prepends, keeping the collection newest first.
	AddTransaction    struct{ Transaction core.Transaction }
	UpdateTransaction struct {
		ID          string
		Transaction core.Transaction
	}
	DeleteTransaction struct{ ID string }

	SetCategories struct{ Categories []core.Category }
	AddCategory   struct{ Category core.Category }
	UpdateCategory struct {
		ID       string
		Category core.Category
	}
	DeleteCategory struct{ ID string }
)

// Reduce returns the state that results from applying a to s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a SetTransactions) apply(s State) State {
	s.Transactions = cloneOrEmpty(a.Transactions)
	return s
}

func (a AddTransaction) apply(s State) State {
	next := make([]core.Transaction, 0, len(s.Transactions)+1)
	next = append(next, a.Transaction)
	s.Transactions = append(next, s.Transactions...)
	return s
}

func (a UpdateTransaction) apply(s State) State {
	s.Transactions = replaceWhere(s.Transactions, func(t core.Transaction) bool { return t.ID == a.ID }, a.Transaction)
	return s
}

func (a DeleteTransaction) apply(s State) State {
	s.Transactions = removeWhere(s.Transactions, func(t core.Transaction) bool { return t.ID == a.ID })
	return s
}

func (a SetCategories) apply(s State) State {
	s.Categories = cloneOrEmpty(a.Categories)
	return s
}

func (a AddCategory) apply(s State) State {
	next := make([]core.Category, 0, len(s.Categories)+1)
	next = append(next, s.Categories...)
	s.Categories = append(next, a.Category)
	return s
}

func (a UpdateCategory) apply(s State) State {
	s.Categories = replaceWhere(s.Categories, func(c core.Category) bool { return c.ID == a.ID }, a.Category)
	return s
}

func (a DeleteCategory) apply(s State) State {
	s.Categories = removeWhere(s.Categories, func(c core.Category) bool { return c.ID == a.ID })
	return s
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

func replaceWhere[T any](in []T, match func(T) bool, with T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		if match(v) {
			out[i] = with
		} else {
			out[i] = v
		}
	}
	return out
}

func removeWhere[T any](in []T, match func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
