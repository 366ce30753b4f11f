// Package metrics exposes Prometheus collectors for the HTTP surface and the ledger.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"loyalty/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loyalty"

// Metrics owns a private registry so tests and multiple apps never collide.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	transactions       *prometheus.CounterVec
	pointsMoved        *prometheus.CounterVec
	promotionsConsumed prometheus.Counter
	rateLimited        *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_transactions_total",
			Help:      "Committed ledger transactions by type.",
		}, []string{"type"}),
		pointsMoved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_points_total",
			Help:      "Absolute points recorded on committed transactions by type and direction.",
		}, []string{"type", "direction"}),
		promotionsConsumed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_promotions_consumed_total",
			Help:      "One-time promotions marked as used.",
		}),
		rateLimited: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests refused by the per-user rate limiter.",
		}, []string{"operation"}),
	}
}

// AsLedgerMetrics exposes the business counters through the domain port.
func AsLedgerMetrics(m *Metrics) service.LedgerMetrics {
	return m
}

func (m *Metrics) TransactionRecorded(txType string, amount int64) {
	m.transactions.WithLabelValues(txType).Inc()

	direction := "credit"
	if amount < 0 {
		direction = "debit"
		amount = -amount
	}
	m.pointsMoved.WithLabelValues(txType, direction).Add(float64(amount))
}

func (m *Metrics) PromotionsConsumed(count int) {
	if count > 0 {
		m.promotionsConsumed.Add(float64(count))
	}
}

func (m *Metrics) RateLimited(operation string) {
	m.rateLimited.WithLabelValues(operation).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request count and latency labelled by the route template.
// Errors are handed to the echo error handler here so the final status is known.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		m.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}
