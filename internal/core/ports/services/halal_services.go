package services

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// HalalScreenSvc is the allow-list gate in front of trading and watchlists.
type HalalScreenSvc interface {
	// IsApproved reports whether the canonical form of symbol is in the approved set.
	IsApproved(ctx context.Context, symbol string) (bool, error)

	// Check returns apperrors.ErrNotHalalApproved when symbol is not approved.
	Check(ctx context.Context, symbol string) error
}

// HalalCatalogSvc lists and maintains the approved universe.
type HalalCatalogSvc interface {
	ListSymbols(ctx context.Context) ([]domain.HalalSymbol, error)
	SearchSymbols(ctx context.Context, search string, limit int) ([]domain.HalalSymbol, error)
	SeedSymbols(ctx context.Context, symbols []domain.HalalSymbol) (int, error)
}

// HalalSvcFacade combines the screen and the catalog.
type HalalSvcFacade interface {
	HalalScreenSvc
	HalalCatalogSvc
}
