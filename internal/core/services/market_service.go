package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
)

// maxQuoteFanout caps concurrent oracle calls for one batch request.
const maxQuoteFanout = 8

type marketService struct {
	BaseService
	oracle portssvc.PriceOracle
	halal  portssvc.HalalSvcFacade
}

// NewMarketService creates a quote service restricted to the halal universe.
func NewMarketService(oracle portssvc.PriceOracle, halal portssvc.HalalSvcFacade) portssvc.MarketSvcFacade {
	return &marketService{oracle: oracle, halal: halal}
}

var _ portssvc.MarketSvcFacade = (*marketService)(nil)

func (s *marketService) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.CanonicalSymbol(symbol)
	if err := s.halal.Check(ctx, symbol); err != nil {
		return nil, err
	}
	quote, err := s.oracle.GetQuote(ctx, symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceUnavailable) {
			s.LogDebug(ctx, "No quote available", slog.String("symbol", symbol), slog.String("error", err.Error()))
			return nil, fmt.Errorf("quote for %s: %w", symbol, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return quote, nil
}

func (s *marketService) GetQuotes(ctx context.Context, symbols []string) (map[string]*domain.Quote, error) {
	wanted, err := s.approvedSymbols(ctx, symbols)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	quotes := make(map[string]*domain.Quote, len(wanted))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxQuoteFanout)
	for _, symbol := range wanted {
		symbol := symbol
		g.Go(func() error {
			quote, err := s.oracle.GetQuote(gctx, symbol)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.LogDebug(ctx, "Quote unavailable", slog.String("symbol", symbol), slog.String("error", err.Error()))
				quote = nil
			}
			mu.Lock()
			quotes[symbol] = quote
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return quotes, nil
}

// approvedSymbols canonicalizes and de-duplicates the request and drops symbols outside
// the halal universe. An empty request means every approved symbol.
func (s *marketService) approvedSymbols(ctx context.Context, symbols []string) ([]string, error) {
	if len(symbols) == 0 {
		all, err := s.halal.ListSymbols(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(all))
		for _, sym := range all {
			out = append(out, domain.CanonicalSymbol(sym.Symbol))
		}
		return out, nil
	}

	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, raw := range symbols {
		symbol := domain.CanonicalSymbol(raw)
		if symbol == "" {
			continue
		}
		if _, dup := seen[symbol]; dup {
			continue
		}
		seen[symbol] = struct{}{}
		ok, err := s.halal.IsApproved(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, symbol)
		}
	}
	return out, nil
}
