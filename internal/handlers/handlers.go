package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aicloudmania.dev/internal/config"
	"aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/middleware"
	"aicloudmania.dev/internal/services"
)

// TracingService names the spans emitted by the HTTP server.
const TracingService = "aicloudmania-http"

// Services bundles what the routes depend on.
type Services struct {
	Site         *services.SiteService
	Projects     *services.ProjectService
	Technologies *services.TechnologyService
	Contact      *services.ContactService
	// Ready reports whether backing stores are reachable. Nil means the
	// process is always ready.
	Ready func(ctx context.Context) error
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, svc Services) http.Handler {
	r := chi.NewRouter()

	stack := middleware.StackConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		EnableMetrics:  true,
		EnableLogging:  true,
	}
	if cfg.Tracing.Enabled {
		stack.TracingService = TracingService
	}
	middleware.Apply(r, stack)

	// Initialize handlers
	pageHandler := NewPageHandler(svc.Site, svc.Technologies)
	contactHandler := NewContactHandler(svc.Contact, pageHandler)
	catalogHandler := NewCatalogHandler(svc.Site, svc.Technologies)
	projectHandler := NewProjectHandler(svc.Projects)

	// One limiter shared by both contact endpoints
	limitContact := middleware.RateLimit(cfg.Contact.RatePerMinute, time.Minute)

	r.Get("/", pageHandler.Index)
	r.With(limitContact).Post("/contact", contactHandler.SubmitForm)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/services", catalogHandler.ListServices)
		r.Get("/team", catalogHandler.ListTeam)
		r.Get("/technologies", catalogHandler.ListTechnologies)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		r.Get("/contact/options", contactHandler.Options)
		r.With(limitContact).Post("/contact", contactHandler.SubmitJSON)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/ready", readiness(svc.Ready))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger := log.WithComponent("handlers")
		logger.Error().Err(err).Msg("error encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// readiness handles GET /api/ready
func readiness(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				logger := log.WithComponentFromContext(r.Context(), "handlers")
				logger.Warn().Err(err).Str(log.FieldEvent, "readiness.failed").Msg("not ready")
				respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
