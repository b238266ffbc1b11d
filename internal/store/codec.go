package store

import (
	"encoding/json"
	"fmt"

	"expense-tracker/internal/core"
)

// EncodeTransactions serialises txs in the persisted layout. A nil slice is
// written as an empty array.
func EncodeTransactions(txs []core.Transaction) (string, error) {
	if txs == nil {
		txs = []core.Transaction{}
	}
	b, err := json.Marshal(txs)
	if err != nil {
		return "", fmt.Errorf("encode transactions: %w", err)
	}
	return string(b), nil
}

func EncodeCategories(cats []core.Category) (string, error) {
	if cats == nil {
		cats = []core.Category{}
	}
	b, err := json.Marshal(cats)
	if err != nil {
		return "", fmt.Errorf("encode categories: %w", err)
	}
	return string(b), nil
}

// DecodeTransactions parses a persisted payload and checks every record.
// Any malformed record rejects the whole payload.
func DecodeTransactions(data string) ([]core.Transaction, error) {
	var txs []core.Transaction
	if err := json.Unmarshal([]byte(data), &txs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	for i, t := range txs {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("decode transactions: record %d (id %q): %w", i, t.ID, err)
		}
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	return txs, nil
}

// DecodeCategories is the category counterpart of DecodeTransactions.
func DecodeCategories(data string) ([]core.Category, error) {
	var cats []core.Category
	if err := json.Unmarshal([]byte(data), &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	for i, c := range cats {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("decode categories: record %d (id %q): %w", i, c.ID, err)
		}
	}
	if cats == nil {
		cats = []core.Category{}
	}
	return cats, nil
}
