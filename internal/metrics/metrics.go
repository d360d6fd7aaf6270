// Package metrics provides Prometheus instrumentation for generations and HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jtube"

// Generation outcomes used as label values.
const (
	OutcomeSuccess          = "success"
	OutcomeFundingRequired  = "funding_required"
	OutcomeGenerationFailed = "generation_failed"
	OutcomeInvalidRequest   = "invalid_request"
)

// Metrics groups the collectors registered by the application.
type Metrics struct {
	GenerationsTotal    *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	GeneratedTitles     prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitedTotal    prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "total",
				Help:      "Total number of SEO content generations by outcome",
			},
			[]string{"outcome"},
		),
		GenerationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "duration_seconds",
				Help:      "Duration of generation calls in seconds",
				Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
		),
		GeneratedTitles: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "titles",
				Help:      "Number of titles parsed from successful generations",
				Buckets:   []float64{0, 1, 3, 5, 7, 10, 15},
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"method", "route"},
		),
		RateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "rate_limited_total",
				Help:      "Total number of requests rejected by the rate limiter",
			},
		),
	}

	reg.MustRegister(
		m.GenerationsTotal,
		m.GenerationDuration,
		m.GeneratedTitles,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RateLimitedTotal,
	)

	return m
}
