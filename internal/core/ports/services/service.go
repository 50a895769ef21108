package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it from main.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Orders    OrderSvcFacade
	Portfolio PortfolioSvcFacade
	Halal     HalalSvcFacade
	Watchlist WatchlistSvcFacade
	Market    MarketSvcFacade
	Profile   ProfileSvcFacade
}
