package pgsql

import (
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	catalogRepo := newPgxCatalogRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:     &BaseRepository{Pool: dbPool},
		AccountRepo:   newPgxAccountRepository(dbPool),
		TxnRepo:       newPgxTransactionRepository(dbPool),
		HoldingRepo:   newPgxHoldingRepository(dbPool),
		OrderRepo:     newPgxOrderRepository(dbPool),
		HalalRepo:     catalogRepo,
		WatchlistRepo: catalogRepo,
		ProfileRepo:   catalogRepo,
	}
}
