package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/pkg/id"
)

// halalService gates trading and watchlists on the approved universe.
// IsApproved serves listings from a set cached for cacheTTL. Check gates writes
// and always reads the store, so a symbol pulled from the universe stops
// trading at once.
type halalService struct {
	BaseService
	halalRepo portsrepo.HalalSymbolRepositoryFacade
	cacheTTL  time.Duration

	mu       sync.RWMutex
	approved map[string]struct{}
	loadedAt time.Time
}

// HalalServiceOption configures the halal service.
type HalalServiceOption func(*halalService)

// WithHalalCacheTTL sets how long the approved set is reused. Zero disables caching.
func WithHalalCacheTTL(ttl time.Duration) HalalServiceOption {
	return func(s *halalService) {
		s.cacheTTL = ttl
	}
}

// WithHalalClock overrides the clock, for tests.
func WithHalalClock(now func() time.Time) HalalServiceOption {
	return func(s *halalService) {
		s.now = now
	}
}

// NewHalalService creates a new halal screen and catalog service.
func NewHalalService(repo portsrepo.HalalSymbolRepositoryFacade, options ...HalalServiceOption) portssvc.HalalSvcFacade {
	svc := &halalService{
		halalRepo: repo,
		cacheTTL:  time.Minute,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.HalalSvcFacade = (*halalService)(nil)

func (s *halalService) IsApproved(ctx context.Context, symbol string) (bool, error) {
	symbol = domain.CanonicalSymbol(symbol)
	if symbol == "" {
		return false, nil
	}
	set, err := s.approvedSet(ctx, false)
	if err != nil {
		return false, err
	}
	_, ok := set[symbol]
	return ok, nil
}

func (s *halalService) Check(ctx context.Context, symbol string) error {
	ok := false
	if canonical := domain.CanonicalSymbol(symbol); canonical != "" {
		set, err := s.approvedSet(ctx, true)
		if err != nil {
			return err
		}
		_, ok = set[canonical]
	}
	if !ok {
		s.LogDebug(ctx, "Symbol rejected by halal screen", slog.String("symbol", domain.CanonicalSymbol(symbol)))
		return fmt.Errorf("%w: %s", apperrors.ErrNotHalalApproved, domain.CanonicalSymbol(symbol))
	}
	return nil
}

func (s *halalService) approvedSet(ctx context.Context, fresh bool) (map[string]struct{}, error) {
	now := s.Now()

	s.mu.RLock()
	if !fresh && s.approved != nil && s.cacheTTL > 0 && now.Sub(s.loadedAt) < s.cacheTTL {
		set := s.approved
		s.mu.RUnlock()
		return set, nil
	}
	s.mu.RUnlock()

	symbols, err := s.halalRepo.ListHalalSymbols(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load halal symbols")
		return nil, fmt.Errorf("failed to load halal symbols: %w", err)
	}
	set := make(map[string]struct{}, len(symbols))
	for _, sym := range symbols {
		set[domain.CanonicalSymbol(sym.Symbol)] = struct{}{}
	}

	s.mu.Lock()
	s.approved = set
	s.loadedAt = now
	s.mu.Unlock()
	return set, nil
}

func (s *halalService) invalidate() {
	s.mu.Lock()
	s.approved = nil
	s.mu.Unlock()
}

func (s *halalService) ListSymbols(ctx context.Context) ([]domain.HalalSymbol, error) {
	symbols, err := s.halalRepo.ListHalalSymbols(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list halal symbols")
		return nil, err
	}
	if symbols == nil {
		return []domain.HalalSymbol{}, nil
	}
	return symbols, nil
}

func (s *halalService) SearchSymbols(ctx context.Context, search string, limit int) ([]domain.HalalSymbol, error) {
	symbols, err := s.ListSymbols(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.HalalSymbol, 0, len(symbols))
	for _, sym := range symbols {
		if !sym.Matches(search) {
			continue
		}
		matches = append(matches, sym)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}

func (s *halalService) SeedSymbols(ctx context.Context, symbols []domain.HalalSymbol) (int, error) {
	now := s.Now()
	seen := make(map[string]struct{}, len(symbols))
	rows := make([]domain.HalalSymbol, 0, len(symbols))
	for _, sym := range symbols {
		sym.Symbol = domain.CanonicalSymbol(sym.Symbol)
		if sym.Symbol == "" {
			return 0, apperrors.NewValidationError("halal symbol ticker is required")
		}
		if _, dup := seen[sym.Symbol]; dup {
			continue
		}
		seen[sym.Symbol] = struct{}{}
		if sym.Name == "" {
			sym.Name = sym.Symbol
		}
		if sym.AssetType == "" {
			sym.AssetType = "stock"
		}
		sym.SymbolID = id.NewUUID()
		sym.CreatedAt = now
		verified := now
		sym.LastVerifiedAt = &verified
		rows = append(rows, sym)
	}

	n, err := s.halalRepo.UpsertHalalSymbols(ctx, rows)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed halal symbols", slog.Int("count", len(rows)))
		return 0, err
	}
	s.invalidate()
	s.LogInfo(ctx, "Halal symbols seeded", slog.Int("count", n))
	return n, nil
}
