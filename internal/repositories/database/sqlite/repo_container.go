package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository onto one database handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	historyRepo := newSQLiteHistoryRepository(db)
	catalogRepo := newSQLiteCatalogRepository(db)

	return portsrepo.RepositoryProvider{
		TxManager:     &BaseRepository{DB: db},
		AccountRepo:   newSQLiteAccountRepository(db),
		TxnRepo:       historyRepo,
		HoldingRepo:   historyRepo,
		OrderRepo:     historyRepo,
		HalalRepo:     catalogRepo,
		WatchlistRepo: catalogRepo,
		ProfileRepo:   catalogRepo,
	}
}
