package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultYahooBaseURL is the public chart API host.
const DefaultYahooBaseURL = "https://query2.finance.yahoo.com"

const userAgent = "amanah-ledger/1.0"

// ErrNoResult is returned when the chart response carries no series.
var ErrNoResult = errors.New("yahoo: no result")

type cachedQuote struct {
	quote   domain.Quote
	fetched time.Time
}

// YahooOracle prices symbols from the Yahoo Finance v8 chart endpoint and
// caches each quote for a fixed TTL.
type YahooOracle struct {
	cli     *http.Client
	baseURL string
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger

	mu    sync.RWMutex
	cache map[string]cachedQuote
}

// YahooOption configures a YahooOracle.
type YahooOption func(*YahooOracle)

// WithBaseURL points the oracle at another host, e.g. a test server.
func WithBaseURL(baseURL string) YahooOption {
	return func(o *YahooOracle) { o.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) YahooOption {
	return func(o *YahooOracle) { o.cli.Timeout = d }
}

// WithCacheTTL sets how long a quote is served from cache.
func WithCacheTTL(d time.Duration) YahooOption {
	return func(o *YahooOracle) { o.ttl = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) YahooOption {
	return func(o *YahooOracle) { o.now = now }
}

// WithLogger sets the logger used for upstream failures.
func WithLogger(logger *slog.Logger) YahooOption {
	return func(o *YahooOracle) { o.logger = logger }
}

// NewYahooOracle creates an oracle with an 8s timeout and a 60s cache.
func NewYahooOracle(opts ...YahooOption) *YahooOracle {
	o := &YahooOracle{
		cli:     &http.Client{Timeout: 8 * time.Second},
		baseURL: DefaultYahooBaseURL,
		ttl:     60 * time.Second,
		now:     time.Now,
		logger:  slog.Default(),
		cache:   make(map[string]cachedQuote),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ portssvc.PriceOracle = (*YahooOracle)(nil)

// GetQuote returns the latest quote for symbol. Any upstream failure is
// reported as apperrors.ErrPriceUnavailable.
func (o *YahooOracle) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.CanonicalSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", apperrors.ErrPriceUnavailable)
	}

	o.mu.RLock()
	if c, ok := o.cache[symbol]; ok && o.now().Sub(c.fetched) < o.ttl {
		o.mu.RUnlock()
		q := c.quote
		return &q, nil
	}
	o.mu.RUnlock()

	quote, err := o.fetch(ctx, symbol)
	if err != nil {
		o.logger.WarnContext(ctx, "Price fetch failed", slog.String("symbol", symbol), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceUnavailable, symbol, err)
	}

	o.mu.Lock()
	o.cache[symbol] = cachedQuote{quote: *quote, fetched: o.now()}
	o.mu.Unlock()

	return quote, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (o *YahooOracle) fetch(ctx context.Context, symbol string) (*domain.Quote, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1m&range=1d", o.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := o.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo http %d", resp.StatusCode)
	}

	var raw chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	if len(raw.Chart.Result) == 0 {
		return nil, ErrNoResult
	}

	r := raw.Chart.Result[0]
	price := r.Meta.RegularMarketPrice
	asOf := time.Unix(r.Meta.RegularMarketTime, 0).UTC()

	// Fall back to the last non-zero close when the meta block is incomplete.
	if (price <= 0 || r.Meta.RegularMarketTime == 0) && len(r.Indicators.Quote) > 0 && len(r.Indicators.Quote[0].Close) == len(r.Timestamp) {
		closes := r.Indicators.Quote[0].Close
		for i := len(r.Timestamp) - 1; i >= 0; i-- {
			if c := closes[i]; c != nil && *c > 0 {
				price = *c
				asOf = time.Unix(r.Timestamp[i], 0).UTC()
				break
			}
		}
	}
	if price <= 0 {
		return nil, fmt.Errorf("yahoo: no price for %s", symbol)
	}
	if r.Meta.RegularMarketTime == 0 && asOf.Unix() == 0 {
		asOf = o.now().UTC()
	}

	currency := strings.ToUpper(r.Meta.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	quote := &domain.Quote{
		Symbol:   symbol,
		Price:    decimal.NewFromFloat(price),
		Currency: currency,
		AsOf:     asOf,
	}

	prevClose := r.Meta.PreviousClose
	if prevClose <= 0 {
		prevClose = r.Meta.ChartPreviousClose
	}
	if prevClose > 0 {
		pc := decimal.NewFromFloat(prevClose)
		change := quote.Price.Sub(pc).Div(pc).Mul(decimal.NewFromInt(100)).Round(2)
		quote.PreviousClose = &pc
		quote.ChangePercent = &change
	}
	return quote, nil
}
