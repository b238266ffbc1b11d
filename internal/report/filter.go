package report

import (
	"fmt"
	"strings"
	"time"

	"expense-tracker/internal/core"
)

// DateFilter names a time window relative to a reference instant.
type DateFilter string

const (
	FilterToday DateFilter = "today"
	FilterWeek  DateFilter = "week"
	FilterMonth DateFilter = "month"
	FilterAll   DateFilter = "all"
)

var filterLabels = map[DateFilter]string{
	FilterToday: "Today",
	FilterWeek:  "Last 7 days",
	FilterMonth: "This month",
	FilterAll:   "All",
}

// DateFilters returns the filters in display order.
func DateFilters() []DateFilter {
	return []DateFilter{FilterToday, FilterWeek, FilterMonth, FilterAll}
}

// ParseDateFilter accepts a filter name case-insensitively.
func ParseDateFilter(s string) (DateFilter, error) {
	f := DateFilter(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := filterLabels[f]; !ok {
		return "", fmt.Errorf("unknown date filter %q: must be one of %v", s, DateFilters())
	}
	return f, nil
}

func (f DateFilter) String() string {
	return string(f)
}

// Label is the display name of the filter.
func (f DateFilter) Label() string {
	if l, ok := filterLabels[f]; ok {
		return l
	}
	return string(f)
}

// Window returns the inclusive [from, to] date bounds of the filter relative
// to ref, in ref's location. ok is false for FilterAll and unknown filters,
// which do not restrict anything.
func (f DateFilter) Window(ref time.Time) (from, to core.Date, ok bool) {
	to = core.DateOf(ref)
	switch f {
	case FilterToday:
		return to, to, true
	case FilterWeek:
		return core.DateOf(ref.AddDate(0, 0, -7)), to, true
	case FilterMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return core.DateOf(first), to, true
	default:
		return "", "", false
	}
}

// FilterByDateRange keeps the transactions whose date falls in the filter's
// window. The window always ends at ref, so transactions dated after ref are
// dropped from week and month views too. FilterAll returns txs itself.
// Dates are compared as strings.
func FilterByDateRange(txs []core.Transaction, f DateFilter, ref time.Time) []core.Transaction {
	from, to, ok := f.Window(ref)
	if !ok {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date >= from && t.Date <= to {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDateRangeNow is FilterByDateRange relative to the current local time.
func FilterByDateRangeNow(txs []core.Transaction, f DateFilter) []core.Transaction {
	return FilterByDateRange(txs, f, time.Now())
}
