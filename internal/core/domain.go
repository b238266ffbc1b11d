package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DateLayout is the persisted date-only layout. Zero padded, so lexical
// order equals chronological order.
const DateLayout = "2006-01-02"

type (
	TransactionType string

	// Date is a calendar date in DateLayout form.
	Date string

	Money struct {
		Cents int64
	}

	Transaction struct {
		ID          string          `json:"id"`
		Amount      Money           `json:"amount"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"` // Category ID, may dangle
		Description string          `json:"description"`
		Date        Date            `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
	}

	// TransactionInput is what a form submits: everything but the generated fields.
	TransactionInput struct {
		Amount      Money
		Type        TransactionType
		Category    string
		Description string
		Date        Date
	}

	Category struct {
		ID    string          `json:"id"`
		Name  string          `json:"name"`
		Icon  string          `json:"icon"`
		Color string          `json:"color"`
		Type  TransactionType `json:"type"`
	}

	CategoryInput struct {
		Name  string
		Icon  string
		Color string
		Type  TransactionType
	}

	TransactionSummary struct {
		TotalIncome      Money
		TotalExpense     Money
		NetAmount        Money
		TransactionCount int
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyName     = errors.New("empty category name")
	ErrEmptyID       = errors.New("empty id")
)

func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

func (t TransactionType) Validate() error {
	if !t.IsValid() {
		return ErrInvalidType
	}
	return nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) String() string {
	return string(d)
}

// Time parses the date as midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

func (d Date) Validate() error {
	if d == "" {
		return ErrInvalidDate
	}
	if _, err := d.Time(); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

func (m Money) IsZero() bool {
	return m.Cents == 0
}

// Validate checks the fields a stored transaction must always satisfy.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	return t.Date.Validate()
}

// Input returns the mutable part of t.
func (t Transaction) Input() TransactionInput {
	return TransactionInput{
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
	}
}

// Validate reports every invalid field at once so a form can show them together.
// The returned error is nil or a FieldErrors.
func (in TransactionInput) Validate() error {
	errs := FieldErrors{}
	if err := in.Amount.Validate(); err != nil {
		errs.Add("amount", "amount must be greater than 0")
	}
	if err := in.Type.Validate(); err != nil {
		errs.Add("type", "type must be income or expense")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs.Add("category", "category is required")
	}
	if in.Date == "" {
		errs.Add("date", "date is required")
	} else if err := in.Date.Validate(); err != nil {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return c.Type.Validate()
}

func (c Category) Input() CategoryInput {
	return CategoryInput{Name: c.Name, Icon: c.Icon, Color: c.Color, Type: c.Type}
}

func (in CategoryInput) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", "name is required")
	}
	if err := in.Type.Validate(); err != nil {
		errs.Add("type", "type must be income or expense")
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

// UnknownCategory is shown in place of a category reference that no longer resolves.
func UnknownCategory(id string) Category {
	return Category{
		ID:    id,
		Name:  "Uncategorized",
		Icon:  "❓",
		Color: "bg-gray-500",
	}
}
