package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/amanah_ledger/internal/core/services"
	"github.com/SscSPs/amanah_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/amanah_ledger/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHalalSeed(t *testing.T) {
	symbols, err := parseHalalSeed(strings.NewReader(`
symbols:
  - symbol: spus
    name: SP Funds S&P 500 Sharia Industry Exclusions ETF
    assetType: etf
  - symbol: AAPL
`))
	require.NoError(t, err)
	require.Len(t, symbols, 2)
	assert.Equal(t, "spus", symbols[0].Symbol)
	assert.Equal(t, "etf", symbols[0].AssetType)
	assert.Empty(t, symbols[1].Name)
}

func TestSeedHalalFromFile_ShippedUniverse(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.MigrateSQLite(db, logger))

	halal := services.NewHalalService(sqlite.NewRepositoryProvider(db).HalalRepo)
	n, err := seedHalalFromFile(ctx, halal, filepath.Join("..", "..", "config", "halal_symbols.yaml"), logger)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	ok, err := halal.IsApproved(ctx, "spus")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSeedHalalFromFile_Missing(t *testing.T) {
	_, err := seedHalalFromFile(context.Background(), nil, filepath.Join(os.TempDir(), "does-not-exist.yaml"), slog.Default())
	assert.Error(t, err)
}
