package core

import "strings"

// TransactionForm is a transaction as typed by a user, before any parsing.
type TransactionForm struct {
	Amount      string
	Type        string
	Category    string
	Description string
	Date        string
}

// Parse converts the form into a TransactionInput. Every problem is reported
// at once as FieldErrors; the returned input is only meaningful when err is nil.
func (f TransactionForm) Parse() (TransactionInput, error) {
	errs := FieldErrors{}

	cents, err := ParseDecimalToCents(f.Amount)
	if err != nil {
		errs.Add("amount", "amount must be a positive number")
	}

	in := TransactionInput{
		Amount:      Money{Cents: cents},
		Type:        TransactionType(strings.ToLower(strings.TrimSpace(f.Type))),
		Category:    strings.TrimSpace(f.Category),
		Description: strings.TrimSpace(f.Description),
		Date:        Date(strings.TrimSpace(f.Date)),
	}

	if verr := in.Validate(); verr != nil {
		for field, msg := range verr.(FieldErrors) {
			errs.Add(field, msg)
		}
	}
	if !errs.Empty() {
		return TransactionInput{}, errs
	}
	return in, nil
}
