// Package middleware holds the HTTP ingress chain shared by every route.
package middleware

import (
	"github.com/go-chi/chi/v5"
)

// StackConfig selects the optional parts of the middleware chain.
type StackConfig struct {
	// AllowedOrigins extends same-origin for the CSRF check.
	AllowedOrigins []string
	// CSP overrides DefaultCSP when set.
	CSP string

	EnableMetrics  bool
	TracingService string // empty disables tracing
	EnableLogging  bool
}

// Apply installs the chain on r in its fixed order. Rate limiting is not
// part of the chain; routes that need it add RateLimit themselves.
func Apply(r chi.Router, cfg StackConfig) {
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(SecurityHeaders(cfg.CSP))
	r.Use(CSRF(cfg.AllowedOrigins))
	if cfg.EnableMetrics {
		r.Use(Metrics())
	}
	if cfg.TracingService != "" {
		r.Use(Tracing(cfg.TracingService))
	}
	if cfg.EnableLogging {
		r.Use(Logger)
	}
}
