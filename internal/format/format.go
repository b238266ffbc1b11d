// Package format renders money and dates for display.
//
// Nothing here is used for comparisons: filters always compare the raw
// YYYY-MM-DD strings stored on transactions.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"expense-tracker/internal/core"
)

// Locale selects the month and weekday names and the calendar era.
type Locale string

const (
	English Locale = "en"
	Thai    Locale = "th"
)

// buddhistEraOffset converts a Gregorian year to the Thai solar calendar year.
const buddhistEraOffset = 543

var (
	thaiMonths   = [...]string{"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.", "ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค."}
	thaiWeekdays = [...]string{"อา.", "จ.", "อ.", "พ.", "พฤ.", "ศ.", "ส."}
)

// ParseLocale maps a configuration value to a Locale.
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Thai:
		return l, nil
	default:
		return "", fmt.Errorf("unsupported locale %q: must be one of [en th]", s)
	}
}

// Formatter renders values for one locale. The zero value formats in English.
type Formatter struct {
	Locale Locale
	Symbol string
}

// New returns a formatter for locale using the baht sign.
func New(locale Locale) Formatter {
	return Formatter{Locale: locale, Symbol: "฿"}
}

var defaultFormatter = New(English)

// SetDefault changes the formatter used by the package-level functions.
func SetDefault(f Formatter) {
	defaultFormatter = f
}

// Currency formats with the default formatter.
func Currency(m core.Money) string {
	return defaultFormatter.Currency(m)
}

func SignedCurrency(m core.Money, typ core.TransactionType) string {
	return defaultFormatter.SignedCurrency(m, typ)
}

func Date(d core.Date) string {
	return defaultFormatter.Date(d)
}

func DateTime(t time.Time) string {
	return defaultFormatter.DateTime(t)
}

// Currency groups thousands and shows at most two fractional digits, dropping
// trailing zeros: ฿35,000  ฿12.5  -฿1,250.75
func (f Formatter) Currency(m core.Money) string {
	sign := ""
	cents := m.Cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	s := humanize.Comma(cents / 100)
	if frac := cents % 100; frac != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%02d", frac), "0")
	}
	return sign + f.symbol() + s
}

// SignedCurrency prefixes income with + and expense with -. The sign of m
// itself is ignored.
func (f Formatter) SignedCurrency(m core.Money, typ core.TransactionType) string {
	if m.Cents < 0 {
		m.Cents = -m.Cents
	}
	if typ == core.Income {
		return "+" + f.Currency(m)
	}
	return "-" + f.Currency(m)
}

// Date renders a stored date, e.g. "Sat, 10 Aug 2024". Unparseable input is
// returned as is.
func (f Formatter) Date(d core.Date) string {
	t, err := d.Time()
	if err != nil {
		return string(d)
	}
	if f.Locale == Thai {
		return fmt.Sprintf("%s %d %s %d", thaiWeekdays[t.Weekday()], t.Day(), thaiMonths[t.Month()-1], t.Year()+buddhistEraOffset)
	}
	return t.Format("Mon, 2 Jan 2006")
}

// DateTime renders a timestamp in its own location, e.g. "10 Aug 2024 09:00".
func (f Formatter) DateTime(t time.Time) string {
	if f.Locale == Thai {
		return fmt.Sprintf("%d %s %d %s", t.Day(), thaiMonths[t.Month()-1], t.Year()+buddhistEraOffset, t.Format("15:04"))
	}
	return t.Format("2 Jan 2006 15:04")
}

func (f Formatter) symbol() string {
	if f.Symbol == "" {
		return "฿"
	}
	return f.Symbol
}
