package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both the Postgres and the SQLite stores build one.
type RepositoryProvider struct {
	TxManager     TransactionManager
	AccountRepo   AccountRepositoryFacade
	TxnRepo       TransactionReader
	HoldingRepo   HoldingReader
	OrderRepo     OrderReader
	HalalRepo     HalalSymbolRepositoryFacade
	WatchlistRepo WatchlistRepositoryFacade
	ProfileRepo   ProfileRepositoryFacade
}
