package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/pkg/id"
)

type watchlistService struct {
	BaseService
	watchlistRepo portsrepo.WatchlistRepositoryFacade
	halal         portssvc.HalalScreenSvc
}

// NewWatchlistService creates a new watchlist service. Symbols are screened before they are stored.
func NewWatchlistService(repo portsrepo.WatchlistRepositoryFacade, halal portssvc.HalalScreenSvc) portssvc.WatchlistSvcFacade {
	return &watchlistService{watchlistRepo: repo, halal: halal}
}

var _ portssvc.WatchlistSvcFacade = (*watchlistService)(nil)

func (s *watchlistService) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistItem, error) {
	items, err := s.watchlistRepo.ListWatchlist(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list watchlist", slog.String("user_id", userID))
		return nil, err
	}
	if items == nil {
		return []domain.WatchlistItem{}, nil
	}
	return items, nil
}

func (s *watchlistService) AddToWatchlist(ctx context.Context, userID string, symbol string) (*domain.WatchlistItem, error) {
	symbol = domain.CanonicalSymbol(symbol)
	if symbol == "" {
		return nil, apperrors.NewValidationError("symbol is required")
	}
	if err := s.halal.Check(ctx, symbol); err != nil {
		return nil, err
	}

	item, err := s.watchlistRepo.UpsertWatchlistItem(ctx, domain.WatchlistItem{
		ItemID:    id.NewUUID(),
		UserID:    userID,
		Symbol:    symbol,
		CreatedAt: s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add watchlist item", slog.String("symbol", symbol))
		return nil, err
	}
	s.LogInfo(ctx, "Symbol added to watchlist", slog.String("symbol", symbol))
	return item, nil
}

func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, userID string, symbol string) error {
	symbol = domain.CanonicalSymbol(symbol)
	if err := s.watchlistRepo.DeleteWatchlistItem(ctx, userID, symbol); err != nil {
		s.logRejection(ctx, err, "Failed to remove watchlist item", slog.String("symbol", symbol))
		return err
	}
	return nil
}
