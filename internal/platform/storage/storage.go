// Package storage opens the repository backend selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/erp_ledger/internal/repositories/memory"
	"github.com/SscSPs/erp_ledger/pkg/database"
)

// Open returns the repositories for cfg.DBDriver and a function releasing them.
// PostgreSQL schemas are migrated before the pool is handed out.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMemory:
		logger.Info("Using in-memory storage; data is lost on exit")
		return memory.New().Provider(), func() {}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.SQLitePath))
		return store.Provider(), func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing sqlite store", slog.String("error", err.Error()))
			}
		}, nil

	case config.DriverPostgres:
		logger.Info("Running database migrations...")
		if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		pool, err := database.NewPgxPool(ctx, database.PoolOptions{
			URL:             cfg.DatabaseURL,
			MaxConns:        int32(cfg.DBMaxConns),
			CheckConnection: cfg.EnableDBCheck,
			Logger:          logger,
		})
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool, logger) }, nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.DBDriver)
}
