// Package store owns the transaction and category collections, applies
// mutations through Reduce and writes every committed state to a storage.KV.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"expense-tracker/internal/core"
	"expense-tracker/internal/log"
	"expense-tracker/internal/report"
	"expense-tracker/internal/seed"
	"expense-tracker/internal/storage"
)

// Storage keys of the two persisted collections.
const (
	TransactionsKey = "expense-transactions"
	CategoriesKey   = "expense-categories"
)

var ErrNilStorage = errors.New("store requires a storage backend")

// Seed supplies the collections written on first run.
type Seed struct {
	Transactions func() []core.Transaction
	Categories   func() []core.Category
}

// DefaultSeed is the built-in category list with the demo transactions.
func DefaultSeed() Seed {
	return Seed{
		Transactions: seed.SampleTransactions,
		Categories:   seed.DefaultCategories,
	}
}

type Option func(*Store)

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces the random UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.WithComponent(log.ComponentStore)
		}
	}
}

// WithSeed sets the first-run data. A nil function seeds an empty collection.
func WithSeed(sd Seed) Option {
	return func(s *Store) {
		s.seed = sd
	}
}

// Store is safe for concurrent use. Reads return copies, so callers never
// observe a later mutation through a slice they already hold.
type Store struct {
	mu     sync.RWMutex
	state  State
	kv     storage.KV
	logger *log.Logger
	now    func() time.Time
	newID  func() string
	seed   Seed
}

// New loads both collections from kv. Missing or malformed payloads load as
// empty collections; when neither key exists yet the seed data is written.
func New(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, ErrNilStorage
	}

	s := &Store{
		state:  State{Transactions: []core.Transaction{}, Categories: []core.Category{}},
		kv:     kv,
		logger: log.FromContext(ctx, log.ComponentStore),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		seed:   DefaultSeed(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txRaw, txFound := s.read(ctx, TransactionsKey)
	catRaw, catFound := s.read(ctx, CategoriesKey)

	if !txFound && !catFound {
		var txs []core.Transaction
		var cats []core.Category
		if s.seed.Transactions != nil {
			txs = s.seed.Transactions()
		}
		if s.seed.Categories != nil {
			cats = s.seed.Categories()
		}
		s.state = Reduce(Reduce(s.state, SetTransactions{Transactions: txs}), SetCategories{Categories: cats})
		s.logger.InfoContext(ctx, "seeding empty storage",
			log.NewFields().WithOperation(log.OpSeed).ToSlice()...)
		s.persistLocked(ctx)
		return
	}

	if txFound && txRaw != "" {
		txs, err := DecodeTransactions(txRaw)
		if err != nil {
			s.logger.WarnContext(ctx, "discarding stored transactions",
				log.NewFields().WithOperation(log.OpLoad).WithKey(TransactionsKey).WithError(err).ToSlice()...)
		} else {
			s.state = Reduce(s.state, SetTransactions{Transactions: txs})
		}
	}
	if catFound && catRaw != "" {
		cats, err := DecodeCategories(catRaw)
		if err != nil {
			s.logger.WarnContext(ctx, "discarding stored categories",
				log.NewFields().WithOperation(log.OpLoad).WithKey(CategoriesKey).WithError(err).ToSlice()...)
		} else {
			s.state = Reduce(s.state, SetCategories{Categories: cats})
		}
	}

	s.logger.InfoContext(ctx, "store loaded",
		log.FieldOperation, log.OpLoad,
		"transactions", len(s.state.Transactions),
		"categories", len(s.state.Categories))
}

// read reports found=true on a backend error so that an unreadable key is
// never overwritten with seed data.
func (s *Store) read(ctx context.Context, key string) (string, bool) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read storage",
			log.NewFields().WithOperation(log.OpLoad).WithKey(key).WithError(err).ToSlice()...)
		return "", true
	}
	return raw, found
}

// persistLocked writes both collections. Failures are logged and the
// in-memory state is kept.
func (s *Store) persistLocked(ctx context.Context) {
	txRaw, err := EncodeTransactions(s.state.Transactions)
	if err == nil {
		err = s.kv.Set(ctx, TransactionsKey, txRaw)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist transactions",
			log.NewFields().WithOperation(log.OpPersist).WithKey(TransactionsKey).WithError(err).ToSlice()...)
	}

	catRaw, err := EncodeCategories(s.state.Categories)
	if err == nil {
		err = s.kv.Set(ctx, CategoriesKey, catRaw)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist categories",
			log.NewFields().WithOperation(log.OpPersist).WithKey(CategoriesKey).WithError(err).ToSlice()...)
	}
}

func (s *Store) dispatchLocked(ctx context.Context, a Action) {
	s.state = Reduce(s.state, a)
	s.persistLocked(ctx)
}

// Transactions returns the transactions, newest first.
func (s *Store) Transactions() []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Transactions)
}

func (s *Store) Categories() []core.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Categories)
}

// Snapshot returns a copy of the full state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Transactions: slices.Clone(s.state.Transactions),
		Categories:   slices.Clone(s.state.Categories),
	}
}

// Category resolves id, returning the placeholder category when it is unknown.
func (s *Store) Category(id string) core.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.LookupCategory(s.state.Categories, id)
}

// AddTransaction stores a new transaction and returns it.
func (s *Store) AddTransaction(ctx context.Context, in core.TransactionInput) (core.Transaction, error) {
	if err := checkTransaction(in); err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := core.Transaction{
		ID:          s.newID(),
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		CreatedAt:   s.now().UTC(),
	}
	s.dispatchLocked(ctx, AddTransaction{Transaction: t})

	s.logger.InfoContext(ctx, "transaction added",
		log.NewFields().WithOperation(log.OpCreate).
			WithTransaction(t.ID, t.Amount.Cents, string(t.Type), t.Date.String()).ToSlice()...)
	return t, nil
}

// UpdateTransaction replaces the fields of transaction id, keeping its id and
// creation time. An unknown id is a no-op.
func (s *Store) UpdateTransaction(ctx context.Context, id string, in core.TransactionInput) error {
	if err := checkTransaction(in); err != nil {
		return fmt.Errorf("update transaction %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.state.Transactions, func(t core.Transaction) bool { return t.ID == id })
	if i < 0 {
		s.logger.DebugContext(ctx, "update of unknown transaction ignored",
			log.FieldOperation, log.OpUpdate, log.FieldTransactionID, id)
		return nil
	}

	createdAt := s.state.Transactions[i].CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	t := core.Transaction{
		ID:          id,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		CreatedAt:   createdAt,
	}
	s.dispatchLocked(ctx, UpdateTransaction{ID: id, Transaction: t})

	s.logger.InfoContext(ctx, "transaction updated",
		log.NewFields().WithOperation(log.OpUpdate).
			WithTransaction(t.ID, t.Amount.Cents, string(t.Type), t.Date.String()).ToSlice()...)
	return nil
}

// DeleteTransaction removes transaction id. An unknown id is a no-op.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.state.Transactions, func(t core.Transaction) bool { return t.ID == id }) {
		return nil
	}
	s.dispatchLocked(ctx, DeleteTransaction{ID: id})

	s.logger.InfoContext(ctx, "transaction deleted",
		log.FieldOperation, log.OpDelete, log.FieldTransactionID, id)
	return nil
}

// AddCategory appends a new category and returns it.
func (s *Store) AddCategory(ctx context.Context, in core.CategoryInput) (core.Category, error) {
	if err := in.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("add category: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := core.Category{
		ID:    s.newID(),
		Name:  in.Name,
		Icon:  in.Icon,
		Color: in.Color,
		Type:  in.Type,
	}
	s.dispatchLocked(ctx, AddCategory{Category: c})

	s.logger.InfoContext(ctx, "category added",
		log.NewFields().WithOperation(log.OpCreate).WithCategory(c.ID, string(c.Type)).ToSlice()...)
	return c, nil
}

// UpdateCategory replaces the fields of category id. An unknown id is a no-op.
// Transactions referring to the category are left untouched.
func (s *Store) UpdateCategory(ctx context.Context, id string, in core.CategoryInput) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("update category %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.state.Categories, func(c core.Category) bool { return c.ID == id }) {
		return nil
	}
	c := core.Category{ID: id, Name: in.Name, Icon: in.Icon, Color: in.Color, Type: in.Type}
	s.dispatchLocked(ctx, UpdateCategory{ID: id, Category: c})

	s.logger.InfoContext(ctx, "category updated",
		log.NewFields().WithOperation(log.OpUpdate).WithCategory(c.ID, string(c.Type)).ToSlice()...)
	return nil
}

// DeleteCategory removes category id. Transactions that reference it keep
// the dangling id and resolve to the placeholder category.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.state.Categories, func(c core.Category) bool { return c.ID == id }) {
		return nil
	}
	s.dispatchLocked(ctx, DeleteCategory{ID: id})

	s.logger.InfoContext(ctx, "category deleted",
		log.FieldOperation, log.OpDelete, log.FieldCategoryID, id)
	return nil
}

// checkTransaction enforces what the decoder requires of a stored record, so
// nothing the store writes can be rejected on the next load.
func checkTransaction(in core.TransactionInput) error {
	if err := in.Amount.Validate(); err != nil {
		return err
	}
	if err := in.Type.Validate(); err != nil {
		return err
	}
	return in.Date.Validate()
}
