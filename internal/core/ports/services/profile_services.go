package services

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/dto"
)

// ProfileSvcFacade reads and updates investment profiles.
type ProfileSvcFacade interface {
	// GetProfile returns an empty profile when the user has none.
	GetProfile(ctx context.Context, userID string) (*domain.InvestmentProfile, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.InvestmentProfile, error)
}
