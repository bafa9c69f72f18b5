package history

import (
	"fmt"
	"strings"
)

// Config holds configuration for the history backend.
type Config struct {
	Backend string // "sqlite" or "postgres"
	DSN     string // File path for SQLite, connection string for Postgres
}

// NewStore creates a Store for the configured backend. An empty backend
// defaults to SQLite.
func NewStore(config Config) (Store, error) {
	switch strings.ToLower(config.Backend) {
	case "postgres", "postgresql":
		if config.DSN == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.DSN)
	case "sqlite", "sqlite3", "":
		if config.DSN == "" {
			config.DSN = "history.db"
		}
		return NewSQLiteStore(config.DSN)
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", config.Backend)
	}
}
