package services

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// PriceOracle supplies last prices. It is an external collaborator; the ledger never computes prices.
type PriceOracle interface {
	// GetQuote returns apperrors.ErrPriceUnavailable when no price exists for symbol.
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}

// MarketSvcFacade serves quotes restricted to the halal universe.
type MarketSvcFacade interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)

	// GetQuotes returns a quote (or nil) for every approved symbol in symbols; empty means all approved.
	GetQuotes(ctx context.Context, symbols []string) (map[string]*domain.Quote, error)
}
