package services_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/amanah_ledger/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newSQLiteRepos opens a migrated temp-file store for the test.
func newSQLiteRepos(t *testing.T) (*sql.DB, portsrepo.RepositoryProvider) {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	require.NoError(t, database.MigrateSQLite(db, slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(func() { _ = db.Close() })
	return db, sqlite.NewRepositoryProvider(db)
}

var testHalalSymbols = []domain.HalalSymbol{
	{Symbol: "aapl", Name: "Apple Inc.", AssetType: "stock"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", AssetType: "stock"},
	{Symbol: "SPUS", Name: "SP Funds S&P 500 Sharia Industry Exclusions ETF", AssetType: "etf"},
}

// stubOracle serves fixed prices and counts calls.
type stubOracle struct {
	mu     sync.Mutex
	prices map[string]string
	calls  int
}

func (o *stubOracle) GetQuote(_ context.Context, symbol string) (*domain.Quote, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	p, ok := o.prices[symbol]
	if !ok {
		return nil, apperrors.ErrPriceUnavailable
	}
	return &domain.Quote{Symbol: symbol, Price: decimal.RequireFromString(p), Currency: "USD"}, nil
}

func ptr[T any](v T) *T {
	return &v
}
