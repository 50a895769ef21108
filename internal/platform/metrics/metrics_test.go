package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsLedgerMetrics(t *testing.T) {
	c := NewCollector(nil)

	c.RecordOrder("buy", 10*time.Millisecond)
	c.RecordOrder("buy", 20*time.Millisecond)
	c.RecordOrderRejected("sell", "insufficient_quantity")
	c.RecordLedgerOperation("deposit", 2500)
	c.RecordConflictRetry("sell")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.ordersExecuted.WithLabelValues("buy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ordersRejected.WithLabelValues("sell", "insufficient_quantity")))
	assert.Equal(t, 2500.0, testutil.ToFloat64(c.ledgerVolume.WithLabelValues("deposit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.conflictRetries.WithLabelValues("sell")))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordOrder("buy", time.Second)
		c.RecordLedgerOperation("deposit", 1)
		c.ObserveHTTPRequest("GET", "/health", 200, time.Millisecond)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector(nil)
	c.RecordLedgerOperation("withdrawal", 100)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `amanah_ledger_operations_total{type="withdrawal"} 1`)
}
