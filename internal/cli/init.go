// Package cli provides common CLI initialization utilities used by
// cmd/expense-tracker.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"expense-tracker/internal/backend"
	"expense-tracker/internal/config"
	"expense-tracker/internal/log"
)

// SetupLogger initializes structured logging at the given level and format
// ("text" or "json"), sets it as the default logger and returns it.
// An unknown level falls back to info.
func SetupLogger(level, format string) *log.Logger {
	return setupLogger(os.Stdout, level, format)
}

func setupLogger(out io.Writer, level, format string) *log.Logger {
	lvl, _ := log.ParseLevel(level)
	logger := log.New(log.Config{
		Level:     lvl,
		Component: log.ComponentApp,
		Format:    format,
		Output:    out,
	})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitBackend creates the storage backend selected by cfg.
// Returns the backend or exits the process on failure.
func InitBackend(ctx context.Context, logger *log.Logger, cfg *config.Config) *backend.BackendResult {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}

	res, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize storage backend",
			log.FieldError, err,
			log.FieldBackend, backendCfg.Type)
		os.Exit(1)
	}
	return res
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM, so an
// interrupted startup stops at the next storage call.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Shutdown runs cleanup and waits for it at most timeout.
func Shutdown(logger *log.Logger, timeout time.Duration, cleanup func() error) error {
	if cleanup == nil {
		return nil
	}

	finished := make(chan error, 1)
	go func() {
		finished <- cleanup()
	}()

	select {
	case err := <-finished:
		if err != nil {
			logger.Error("Cleanup failed", log.FieldOperation, log.OpShutdown, log.FieldError, err)
			return err
		}
		logger.Info("Shutdown complete", log.FieldOperation, log.OpShutdown)
		return nil
	case <-time.After(timeout):
		logger.Warn("Shutdown timeout reached", log.FieldOperation, log.OpShutdown)
		return fmt.Errorf("cleanup did not finish within %v", timeout)
	}
}
