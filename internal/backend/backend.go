// Package backend selects and wires the durable storage
// implementation from configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"wishlog/internal/config"
	"wishlog/internal/store"
	"wishlog/internal/storage"
	"wishlog/internal/storage/memory"
)

// Storage is what a backend must provide: blob persistence plus a
// reachability probe for readiness checks.
type Storage interface {
	store.Storage
	Ping(ctx context.Context) error
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Open creates the configured storage backend. The returned cleanup
// is never nil.
func Open(cfg *config.Config, logger *slog.Logger) (Storage, CleanupFunc, error) {
	switch cfg.DataBackend {
	case "sqlite":
		st, err := storage.NewSQLiteStorage(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return st, st.Close, nil
	case "memory":
		logger.Info("Initialized memory backend")
		return memory.New(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
