package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new investment profile service.
func NewProfileService(repo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: repo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.InvestmentProfile, error) {
	profile, err := s.profileRepo.FindInvestmentProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.InvestmentProfile{UserID: userID}, nil
		}
		s.LogError(ctx, err, "Failed to find investment profile", slog.String("user_id", userID))
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.InvestmentProfile, error) {
	risk := domain.RiskProfile(req.RiskProfile)
	if !risk.IsValid() {
		return nil, apperrors.NewValidationError("invalid risk profile %q", req.RiskProfile)
	}

	profile, err := s.profileRepo.UpsertInvestmentProfile(ctx, domain.InvestmentProfile{
		UserID:      userID,
		RiskProfile: &risk,
		UpdatedAt:   s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update investment profile", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Investment profile updated", slog.String("risk_profile", string(risk)))
	return profile, nil
}
