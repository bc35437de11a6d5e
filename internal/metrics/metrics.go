// Package metrics defines the Prometheus collectors recorded by the Marvel client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup outcomes.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics bundles Prometheus collectors for the client. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	CacheTotal      *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
}

// NewMetrics constructs all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := New(registry)
	m.Registry = registry
	return m
}

// New constructs all metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marvel_requests_total",
			Help: "Total HTTP requests issued to the Marvel API.",
		},
		[]string{"resource", "status"},
	)
	requestDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marvel_request_duration_seconds",
			Help:    "Marvel API request latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	cacheTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marvel_cache_lookups_total",
			Help: "Cache lookups by outcome.",
		},
		[]string{"result"},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marvel_errors_total",
			Help: "Client errors by kind.",
		},
		[]string{"kind"},
	)

	reg.MustRegister(requests, requestDuration, cacheTotal, errorsTotal)

	return &Metrics{
		RequestsTotal:   requests,
		RequestDuration: requestDuration,
		CacheTotal:      cacheTotal,
		ErrorsTotal:     errorsTotal,
	}
}

// IncRequest counts one upstream request for resource with its HTTP status.
func (m *Metrics) IncRequest(resource string, status int) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(resource, statusLabel(status)).Inc()
}

// ObserveDuration records an HTTP request duration.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.Observe(d.Seconds())
}

// IncCache counts a cache lookup; result is CacheHit or CacheMiss.
func (m *Metrics) IncCache(result string) {
	if m == nil {
		return
	}
	m.CacheTotal.WithLabelValues(result).Inc()
}

// IncError increments the errors counter for a kind label.
func (m *Metrics) IncError(kind string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(kind).Inc()
}

func statusLabel(status int) string {
	switch {
	case status == 0:
		return "error"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
