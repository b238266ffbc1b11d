// Package seed holds the data a brand new store starts with.
package seed

import (
	"time"

	"expense-tracker/internal/core"
)

// DefaultCategories returns a fresh copy of the built-in categories.
func DefaultCategories() []core.Category {
	return []core.Category{
		{ID: "income-salary", Name: "Salary", Icon: "💼", Color: "bg-green-500", Type: core.Income},
		{ID: "income-freelance", Name: "Freelance", Icon: "💻", Color: "bg-blue-500", Type: core.Income},
		{ID: "income-investment", Name: "Investment", Icon: "📈", Color: "bg-purple-500", Type: core.Income},
		{ID: "income-other", Name: "Other income", Icon: "💎", Color: "bg-teal-500", Type: core.Income},

		{ID: "expense-food", Name: "Food", Icon: "🍜", Color: "bg-orange-500", Type: core.Expense},
		{ID: "expense-transport", Name: "Transport", Icon: "🚗", Color: "bg-red-500", Type: core.Expense},
		{ID: "expense-shopping", Name: "Shopping", Icon: "🛒", Color: "bg-pink-500", Type: core.Expense},
		{ID: "expense-entertainment", Name: "Entertainment", Icon: "🎬", Color: "bg-indigo-500", Type: core.Expense},
		{ID: "expense-health", Name: "Health", Icon: "🏥", Color: "bg-emerald-500", Type: core.Expense},
		{ID: "expense-bills", Name: "Bills", Icon: "📄", Color: "bg-gray-500", Type: core.Expense},
		{ID: "expense-other", Name: "Other", Icon: "📝", Color: "bg-slate-500", Type: core.Expense},
	}
}

// SampleTransactions returns a fresh copy of the demo transactions.
func SampleTransactions() []core.Transaction {
	return []core.Transaction{
		sample("trans-1", 35000, core.Income, "income-salary", "Monthly salary", "2024-08-10", 9, 0),
		sample("trans-2", 250, core.Expense, "expense-food", "Lunch", "2024-08-10", 12, 30),
		sample("trans-3", 1200, core.Expense, "expense-shopping", "Clothes", "2024-08-09", 15, 45),
		sample("trans-4", 5000, core.Income, "income-freelance", "Website build", "2024-08-08", 18, 0),
		sample("trans-5", 800, core.Expense, "expense-transport", "Fuel", "2024-08-07", 8, 15),
		sample("trans-6", 450, core.Expense, "expense-entertainment", "Cinema", "2024-08-06", 19, 30),
		sample("trans-7", 15000, core.Income, "income-investment", "Stock gains", "2024-08-05", 16, 20),
		sample("trans-8", 180, core.Expense, "expense-food", "Coffee", "2024-08-11", 7, 45),
	}
}

func sample(id string, units int64, typ core.TransactionType, category, desc string, date core.Date, hour, minute int) core.Transaction {
	d, _ := date.Time()
	return core.Transaction{
		ID:          id,
		Amount:      core.Money{Cents: units * 100},
		Type:        typ,
		Category:    category,
		Description: desc,
		Date:        date,
		CreatedAt:   time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC),
	}
}
