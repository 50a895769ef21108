package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/SscSPs/amanah_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/amanah_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/amanah_ledger/pkg/database"
)

// openStore connects the configured driver, optionally migrates it, and returns the repositories
// with a function that releases the connection.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if migrate {
			if err := database.MigrateSQLite(db, logger); err != nil {
				_ = db.Close()
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}
		return sqlite.NewRepositoryProvider(db), closeFn, nil

	case config.DriverPostgres:
		if migrate {
			logger.Info("Running database migrations...")
			if err := database.MigratePostgres(cfg.DatabaseURL, logger); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
