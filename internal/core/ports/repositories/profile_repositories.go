package repositories

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// ProfileRepositoryFacade persists investment profiles.
type ProfileRepositoryFacade interface {
	// FindInvestmentProfile returns apperrors.ErrNotFound when the user has no profile.
	FindInvestmentProfile(ctx context.Context, userID string) (*domain.InvestmentProfile, error)
	UpsertInvestmentProfile(ctx context.Context, profile domain.InvestmentProfile) (*domain.InvestmentProfile, error)
}
