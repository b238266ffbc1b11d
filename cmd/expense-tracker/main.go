package main

import (
	"cmp"
	"context"
	"os"
	"slices"
	"time"

	"expense-tracker/internal/cli"
	"expense-tracker/internal/core"
	"expense-tracker/internal/format"
	"expense-tracker/internal/log"
	"expense-tracker/internal/report"
	"expense-tracker/internal/store"
)

func main() {
	cli.LoadEnvFile()

	// Bootstrap logger until the configured level is known
	logger := cli.SetupLogger("info", "text")
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	locale, _ := format.ParseLocale(cfg.DisplayLocale)
	format.SetDefault(format.New(locale))
	filter, _ := report.ParseDateFilter(cfg.ReportFilter)

	ctx, stop := cli.SignalContext(log.WithContext(context.Background(), logger))
	res := cli.InitBackend(ctx, logger, cfg)

	st, err := store.New(ctx, res.Backend, store.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to open store", log.FieldError, err)
		_ = res.Cleanup()
		stop()
		os.Exit(1)
	}

	if ctx.Err() != nil {
		logger.Warn("Interrupted before the report", log.FieldOperation, log.OpStartup)
	} else {
		logger.Info("Store opened",
			log.FieldOperation, log.OpStartup,
			log.FieldBackend, cfg.DataBackend,
			"locale", locale)
		logReport(logger.WithComponent(log.ComponentReport), st.Snapshot(), filter, time.Now())
	}

	err = cli.Shutdown(logger, cfg.ShutdownTimeout, res.Cleanup)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// logReport writes the summary for filter and the expense share per category.
func logReport(logger *log.Logger, state store.State, filter report.DateFilter, now time.Time) {
	txs := report.FilterByDateRange(state.Transactions, filter, now)
	summary := report.Summarize(txs)

	logger.Info("Summary",
		log.FieldFilter, filter.Label(),
		log.FieldCount, summary.TransactionCount,
		"income", format.Currency(summary.TotalIncome),
		"expense", format.Currency(summary.TotalExpense),
		"net", format.Currency(summary.NetAmount))

	for _, line := range expenseBreakdown(state.Categories, txs) {
		logger.Info("Expense category",
			log.FieldCategoryID, line.Category.ID,
			"name", line.Category.Name,
			"amount", format.Currency(line.Amount),
			"percentage", line.Percentage)
	}
}

type breakdownLine struct {
	Category core.Category
	report.CategoryShare
}

// expenseBreakdown orders expense categories by share, largest first.
func expenseBreakdown(categories []core.Category, txs []core.Transaction) []breakdownLine {
	shares := report.CategoryPercentages(txs, core.Expense)
	lines := make([]breakdownLine, 0, len(shares))
	for id, share := range shares {
		lines = append(lines, breakdownLine{
			Category:      report.LookupCategory(categories, id),
			CategoryShare: share,
		})
	}
	slices.SortFunc(lines, func(a, b breakdownLine) int {
		if c := cmp.Compare(b.Amount.Cents, a.Amount.Cents); c != 0 {
			return c
		}
		return cmp.Compare(a.Category.ID, b.Category.ID)
	})
	return lines
}
