// Package report computes derived views over transaction sets: totals,
// date-window filters, per-category grouping and percentage breakdowns.
//
// Every function here is pure. Inputs are never modified and results are
// freshly allocated, so callers may pass any slice, including ones that are
// not held by a store.
package report

import (
	"github.com/shopspring/decimal"

	"expense-tracker/internal/core"
)

// CategoryShare is one category's slice of the total for a transaction type.
type CategoryShare struct {
	Amount     core.Money
	Percentage int
}

// Summarize totals income and expense. Order of txs is irrelevant.
func Summarize(txs []core.Transaction) core.TransactionSummary {
	var income, expense core.Money
	for _, t := range txs {
		switch t.Type {
		case core.Income:
			income = income.Add(t.Amount)
		case core.Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return core.TransactionSummary{
		TotalIncome:      income,
		TotalExpense:     expense,
		NetAmount:        income.Sub(expense),
		TransactionCount: len(txs),
	}
}

// GroupByCategory buckets transactions by their category reference, keeping
// input order inside each bucket. Dangling references get their own bucket.
func GroupByCategory(txs []core.Transaction) map[string][]core.Transaction {
	groups := make(map[string][]core.Transaction)
	for _, t := range txs {
		groups[t.Category] = append(groups[t.Category], t)
	}
	return groups
}

// FilterByType keeps the transactions of the given type.
func FilterByType(txs []core.Transaction, typ core.TransactionType) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

// CategoryPercentages breaks the total of one transaction type down by
// category. Percentages are rounded half-up to whole numbers, so they may not
// add up to exactly 100. No transactions of typ yields an empty map.
func CategoryPercentages(txs []core.Transaction, typ core.TransactionType) map[string]CategoryShare {
	filtered := FilterByType(txs, typ)

	var total core.Money
	for _, t := range filtered {
		total = total.Add(t.Amount)
	}

	shares := make(map[string]CategoryShare)
	if total.IsZero() {
		return shares
	}

	grand := decimal.NewFromInt(total.Cents)
	hundred := decimal.NewFromInt(100)
	for categoryID, group := range GroupByCategory(filtered) {
		var sum core.Money
		for _, t := range group {
			sum = sum.Add(t.Amount)
		}
		pct := decimal.NewFromInt(sum.Cents).Mul(hundred).Div(grand).Round(0)
		shares[categoryID] = CategoryShare{
			Amount:     sum,
			Percentage: int(pct.IntPart()),
		}
	}
	return shares
}
