package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	registry         *prometheus.Registry
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ProjectionsTotal *prometheus.CounterVec
	RateLimitedTotal prometheus.Counter
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "eventhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		ProjectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventhub",
			Subsystem: "public",
			Name:      "events_projected_total",
			Help:      "Total number of public event projections by outcome.",
		}, []string{"outcome"}), // outcome: ok, rejected
		RateLimitedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eventhub",
			Subsystem: "public",
			Name:      "rate_limited_total",
			Help:      "Total number of public API requests rejected by the rate limiter.",
		}),
	}
	m.registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.ProjectionsTotal, m.RateLimitedTotal)
	return m
}

// ObserveProjection counts one projection outcome.
func (m *Metrics) ObserveProjection(outcome string) {
	m.ProjectionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records a finished request.
func (m *Metrics) ObserveRequest(route string, status int, seconds float64) {
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}

// ObserveRateLimited counts one rejected request.
func (m *Metrics) ObserveRateLimited() {
	m.RateLimitedTotal.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
