package services

import (
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/SscSPs/amanah_ledger/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, oracle portssvc.PriceOracle, collector *metrics.Collector) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The halal screen comes first since orders, watchlists and quotes depend on it
	container.Halal = NewHalalService(repos.HalalRepo, WithHalalCacheTTL(cfg.HalalCacheTTL))

	container.Ledger = NewLedgerService(
		repos.TxManager,
		repos.AccountRepo,
		WithLedgerMaxRetries(cfg.LedgerMaxRetries),
		WithLedgerMetrics(collector),
	)

	container.Orders = NewOrderService(
		repos.TxManager,
		repos.OrderRepo,
		container.Halal,
		WithPriceOracle(oracle),
		WithPricingMode(cfg.PricingMode),
		WithOrderMaxRetries(cfg.LedgerMaxRetries),
		WithOrderMetrics(collector),
	)

	container.Portfolio = NewPortfolioService(repos.AccountRepo, repos.HoldingRepo, repos.TxnRepo)
	container.Watchlist = NewWatchlistService(repos.WatchlistRepo, container.Halal)
	container.Market = NewMarketService(oracle, container.Halal)
	container.Profile = NewProfileService(repos.ProfileRepo)

	return container
}
