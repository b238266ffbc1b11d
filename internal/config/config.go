package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"expense-tracker/internal/format"
	"expense-tracker/internal/log"
	"expense-tracker/internal/report"
)

// DefaultQuotaBytes mirrors the usual browser local storage limit.
const DefaultQuotaBytes = 5 * 1024 * 1024

type Config struct {
	// Backend selection
	DataBackend string

	// File backend
	DataDir string

	// Database
	SQLiteDBPath string

	// Memory backend, 0 disables the limit
	StorageQuotaBytes int

	// Logging
	LogLevel  string
	LogFormat string

	// Display
	DisplayLocale string
	ReportFilter  string

	ShutdownTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		DataBackend:       getEnv("DATA_BACKEND", "file"),
		DataDir:           getEnv("DATA_DIR", "./data"),
		SQLiteDBPath:      getEnv("SQLITE_DB_PATH", "./data/expenses.db"),
		StorageQuotaBytes: getEnvInt("STORAGE_QUOTA_BYTES", DefaultQuotaBytes),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DisplayLocale: getEnv("DISPLAY_LOCALE", "en"),
		ReportFilter:  getEnv("REPORT_FILTER", "month"),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "file", "sqlite"}
	if !slices.Contains(validBackends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "file":
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	case "memory":
		if c.StorageQuotaBytes < 0 {
			errors = append(errors, fmt.Sprintf("invalid storage quota %d: must not be negative", c.StorageQuotaBytes))
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if _, err := format.ParseLocale(c.DisplayLocale); err != nil {
		errors = append(errors, err.Error())
	}
	if _, err := report.ParseDateFilter(c.ReportFilter); err != nil {
		errors = append(errors, err.Error())
	}

	if c.ShutdownTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	} else if c.ShutdownTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at most 5 minutes", c.ShutdownTimeout))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
