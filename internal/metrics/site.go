// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_contact_submissions_total",
		Help: "Contact form submissions by outcome",
	}, []string{"outcome"}) // outcome=delivered|invalid|duplicate|failed

	contactValidationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_contact_validation_errors_total",
		Help: "Contact form field validation failures",
	}, []string{"field"})

	contactDeliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "site_contact_delivery_duration_seconds",
		Help:    "Time spent handing a submission to the delivery backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})

	technologyFilters = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_technology_filter_total",
		Help: "Technology list renders by selected category",
	}, []string{"category"})

	contentReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_content_reloads_total",
		Help: "Content file reload attempts by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	circuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "site_circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
	}, []string{"name"})
)

// Submission outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// RecordContactSubmission counts a contact submission by outcome.
func RecordContactSubmission(outcome string) {
	contactSubmissions.WithLabelValues(outcome).Inc()
}

// RecordValidationError counts a failed field.
func RecordValidationError(field string) {
	contactValidationErrors.WithLabelValues(field).Inc()
}

// ObserveDelivery records how long a delivery backend took.
func ObserveDelivery(backend string, seconds float64) {
	contactDeliveryDuration.WithLabelValues(backend).Observe(seconds)
}

// RecordTechnologyFilter counts a technology list render for category.
func RecordTechnologyFilter(category string) {
	technologyFilters.WithLabelValues(category).Inc()
}

// RecordContentReload counts a content reload attempt.
func RecordContentReload(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	contentReloads.WithLabelValues(outcome).Inc()
}

// SetCircuitBreakerState publishes the breaker state as a gauge value.
func SetCircuitBreakerState(name, state string) {
	var v float64
	switch state {
	case "half-open":
		v = 1
	case "open":
		v = 2
	}
	circuitBreakerState.WithLabelValues(name).Set(v)
}
