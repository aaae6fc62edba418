// Package observability records Prometheus metrics for design computations
// and the HTTP service.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "greenbuild_"

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Recorder owns one set of collectors bound to a registry.
type Recorder struct {
	computations       *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
	exports            *prometheus.CounterVec
	activeSessions     prometheus.Gauge
}

// New creates collectors and registers them with reg. Registering twice
// on the same registry panics.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "computations_total",
				Help: "Total metric computations by archetype",
			},
			[]string{"archetype"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "validation_failures_total",
				Help: "Total rejected configurations by field",
			},
			[]string{"field"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "active_sessions",
				Help: "Open live design sessions",
			},
		),
	}

	reg.MustRegister(
		r.computations,
		r.validationFailures,
		r.httpRequests,
		r.httpLatency,
		r.exports,
		r.activeSessions,
	)
	return r
}

// ObserveComputation counts one successful metrics computation.
func (r *Recorder) ObserveComputation(archetype string) {
	r.computations.WithLabelValues(archetype).Inc()
}

// ObserveValidationFailure counts one rejected field.
func (r *Recorder) ObserveValidationFailure(field string) {
	r.validationFailures.WithLabelValues(field).Inc()
}

// ObserveHTTPRequest records a served request.
func (r *Recorder) ObserveHTTPRequest(route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveExport records a report export attempt.
func (r *Recorder) ObserveExport(format string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	r.exports.WithLabelValues(format, result).Inc()
}

// SessionOpened increments the active session gauge.
func (r *Recorder) SessionOpened() { r.activeSessions.Inc() }

// SessionClosed decrements the active session gauge.
func (r *Recorder) SessionClosed() { r.activeSessions.Dec() }
