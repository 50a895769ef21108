package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "amanah"

// Collector owns the service's Prometheus registry.
type Collector struct {
	registry         *prometheus.Registry
	ordersExecuted   *prometheus.CounterVec
	ordersRejected   *prometheus.CounterVec
	orderDuration    *prometheus.HistogramVec
	ledgerOperations *prometheus.CounterVec
	ledgerVolume     *prometheus.CounterVec
	conflictRetries  *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	logger           *slog.Logger
}

// NewCollector registers all ledger metrics on a private registry.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		ordersExecuted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_executed_total",
			Help:      "Market orders executed, by side.",
		}, []string{"side"}),
		ordersRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_rejected_total",
			Help:      "Market orders rejected before or during the atomic unit, by side and reason.",
		}, []string{"side", "reason"}),
		orderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_execution_duration_seconds",
			Help:      "Time taken to execute an order including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"side"}),
		ledgerOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_operations_total",
			Help:      "Committed ledger transactions, by type.",
		}, []string{"type"}),
		ledgerVolume: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_volume_cents_total",
			Help:      "Sum of committed transaction amounts in cents, by type.",
		}, []string{"type"}),
		conflictRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_conflict_retries_total",
			Help:      "Atomic units retried after a concurrent-write conflict, by operation.",
		}, []string{"operation"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logger: logger,
	}
}

// RecordOrder counts an executed order. A nil collector is a no-op, as are the other methods.
func (m *Collector) RecordOrder(side string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ordersExecuted.WithLabelValues(side).Inc()
	m.orderDuration.WithLabelValues(side).Observe(duration.Seconds())
}

// RecordOrderRejected counts a rejected order.
func (m *Collector) RecordOrderRejected(side string, reason string) {
	if m == nil {
		return
	}
	m.ordersRejected.WithLabelValues(side, reason).Inc()
}

// RecordLedgerOperation counts a committed ledger transaction.
func (m *Collector) RecordLedgerOperation(txType string, amountCents int64) {
	if m == nil {
		return
	}
	m.ledgerOperations.WithLabelValues(txType).Inc()
	m.ledgerVolume.WithLabelValues(txType).Add(float64(amountCents))
}

// RecordConflictRetry counts a retried atomic unit.
func (m *Collector) RecordConflictRetry(operation string) {
	if m == nil {
		return
	}
	m.conflictRetries.WithLabelValues(operation).Inc()
}

// ObserveHTTPRequest records one served request.
func (m *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry exposes the registry for tests.
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{ErrorLog: slog.NewLogLogger(m.logger.Handler(), slog.LevelError)})
}
