package repositories

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// HalalSymbolReader reads the approved universe.
type HalalSymbolReader interface {
	// ListHalalSymbols returns every approved symbol ordered by symbol.
	ListHalalSymbols(ctx context.Context) ([]domain.HalalSymbol, error)
}

// HalalSymbolWriter maintains the approved universe.
type HalalSymbolWriter interface {
	// UpsertHalalSymbols inserts or refreshes symbols by ticker and returns how many rows were written.
	UpsertHalalSymbols(ctx context.Context, symbols []domain.HalalSymbol) (int, error)
}

// HalalSymbolRepositoryFacade combines halal symbol reads and writes.
type HalalSymbolRepositoryFacade interface {
	HalalSymbolReader
	HalalSymbolWriter
}
