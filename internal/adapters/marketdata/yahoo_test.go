package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{"chart":{"result":[{"meta":{"currency":"USD","regularMarketPrice":187.43,"regularMarketTime":1717243200,"previousClose":180.0},"timestamp":[1717243100,1717243200],"indicators":{"quote":[{"close":[187.1,187.43]}]}}],"error":null}}`

func newTestOracle(t *testing.T, handler http.HandlerFunc, opts ...YahooOption) (*YahooOracle, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewYahooOracle(append([]YahooOption{WithBaseURL(srv.URL)}, opts...)...), &calls
}

func TestYahooOracle_GetQuote(t *testing.T) {
	oracle, _ := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1m", r.URL.Query().Get("interval"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(chartBody))
	})

	q, err := oracle.GetQuote(context.Background(), " aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, "187.43", q.Price.String())
	assert.Equal(t, int64(18743), q.PriceCents())
	assert.Equal(t, "USD", q.Currency)
	assert.Equal(t, time.Unix(1717243200, 0).UTC(), q.AsOf)
	require.NotNil(t, q.ChangePercent)
	assert.Equal(t, "4.13", q.ChangePercent.String())
}

func TestYahooOracle_CachesWithinTTL(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	oracle, calls := newTestOracle(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chartBody))
	}, WithCacheTTL(time.Minute), WithClock(func() time.Time { return now }))

	for i := 0; i < 3; i++ {
		_, err := oracle.GetQuote(context.Background(), "AAPL")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	now = now.Add(2 * time.Minute)
	_, err := oracle.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestYahooOracle_FallsBackToLastClose(t *testing.T) {
	body := `{"chart":{"result":[{"meta":{"currency":"USD","regularMarketPrice":0,"regularMarketTime":0},"timestamp":[100,200,300],"indicators":{"quote":[{"close":[10.5,11.25,null]}]}}]}}`
	oracle, _ := newTestOracle(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	q, err := oracle.GetQuote(context.Background(), "SPUS")
	require.NoError(t, err)
	assert.Equal(t, int64(1125), q.PriceCents())
	assert.Equal(t, time.Unix(200, 0).UTC(), q.AsOf)
	assert.Nil(t, q.PreviousClose)
}

func TestYahooOracle_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http error", status: http.StatusTooManyRequests, body: `{}`},
		{name: "empty result", status: http.StatusOK, body: `{"chart":{"result":[]}}`},
		{name: "no price", status: http.StatusOK, body: `{"chart":{"result":[{"meta":{"regularMarketPrice":0}}]}}`},
		{name: "garbage", status: http.StatusOK, body: `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle, _ := newTestOracle(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := oracle.GetQuote(context.Background(), "AAPL")
			assert.ErrorIs(t, err, apperrors.ErrPriceUnavailable)
		})
	}
}

func TestYahooOracle_EmptySymbol(t *testing.T) {
	oracle := NewYahooOracle()
	_, err := oracle.GetQuote(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrPriceUnavailable)
}
