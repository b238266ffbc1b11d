package backend

import (
	"context"
	"fmt"

	"expense-tracker/internal/log"
	"expense-tracker/internal/storage/file"
	"expense-tracker/internal/storage/memory"
	"expense-tracker/internal/storage/sqlite"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.FromContext(context.Background(), log.ComponentBackend)
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config)
	case FileBackend:
		return f.createFileBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config) (*BackendResult, error) {
	repo, err := sqlite.NewRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to list stored keys: %w", err)
	}

	f.logger.InfoContext(ctx, "Initialized SQLite backend",
		log.FieldBackend, SQLiteBackend,
		"db_path", config.SQLiteDBPath,
		"stored_keys", keys)

	return &BackendResult{
		Backend: repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createFileBackend(ctx context.Context, config Config) (*BackendResult, error) {
	store, err := file.New(config.DataDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file backend: %w", err)
	}

	f.logger.InfoContext(ctx, "Initialized file backend",
		log.FieldBackend, FileBackend,
		"data_directory", store.Dir())

	return &BackendResult{
		Backend: store,
		Cleanup: store.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(ctx context.Context, config Config) (*BackendResult, error) {
	store := memory.NewWithQuota(config.QuotaBytes)

	f.logger.InfoContext(ctx, "Initialized memory backend",
		log.FieldBackend, MemoryBackend,
		"quota_bytes", config.QuotaBytes)

	return &BackendResult{
		Backend: store,
		Cleanup: store.Close,
	}, nil
}
