package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for the HTTP surface.
type Metrics struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	submissions *prometheus.CounterVec
	cacheLookup *prometheus.CounterVec
}

// MustNewMetrics builds and registers the collectors on reg.
// Registration errors panic, as promauto does.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "xray",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests by route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "xray",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "xray",
				Name:      "submissions_total",
				Help:      "Recorded submissions by classified archetype.",
			},
			[]string{"archetype"},
		),
		cacheLookup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "xray",
				Subsystem: "dashboard_cache",
				Name:      "lookups_total",
				Help:      "Team dashboard cache lookups by result.",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.requests, m.latency, m.submissions, m.cacheLookup)
	return m
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// IncSubmission counts a recorded submission.
func (m *Metrics) IncSubmission(archetype string) {
	m.submissions.WithLabelValues(archetype).Inc()
}

// IncCacheLookup counts a dashboard cache hit or miss.
func (m *Metrics) IncCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookup.WithLabelValues(result).Inc()
}
