// Package sqlite is a storage.KV backed by a local SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"expense-tracker/internal/log"
	"expense-tracker/internal/storage"

	_ "modernc.org/sqlite"
)

const (
	getQuery    = `SELECT value FROM kv_entries WHERE key = ?`
	upsertQuery = `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	keysQuery = `SELECT key FROM kv_entries ORDER BY key`
)

type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens (creating if needed) the database at dbPath and runs
// pending migrations.
func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite has a single writer; one connection avoids SQLITE_BUSY between our own calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db, path: dbPath}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Get implements storage.KV
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, storage.ErrEmptyKey
	}
	var value string
	err := r.db.QueryRowContext(ctx, getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set implements storage.KV
func (r *Repository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if _, err := r.db.ExecContext(ctx, upsertQuery, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	log.FromContext(ctx, log.ComponentStorage).DebugContext(ctx, "Value saved to SQLite",
		log.FieldStorageKey, key,
		log.FieldBytes, len(value))
	return nil
}

// Keys lists every stored key in order.
func (r *Repository) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, keysQuery)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

var _ storage.KV = (*Repository)(nil)
