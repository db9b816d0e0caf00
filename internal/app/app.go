// Package app wires configuration, content, services and the HTTP server
// together and owns their lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"aicloudmania.dev/internal/cache"
	"aicloudmania.dev/internal/config"
	"aicloudmania.dev/internal/contact"
	"aicloudmania.dev/internal/content"
	"aicloudmania.dev/internal/handlers"
	xglog "aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/services"
	"aicloudmania.dev/internal/telemetry"
)

// ServiceName identifies the process in logs and traces.
const ServiceName = "aicloudmania"

// Webhook delivery tuning. These are not worth exposing as settings.
const (
	webhookRatePerSecond    = 2
	webhookBurst            = 5
	webhookFailureThreshold = 5
	webhookResetTimeout     = 30 * time.Second
	cacheCleanupInterval    = time.Minute
)

// App owns the long-lived runtime: the HTTP server, the content watcher and
// the resources they share.
type App struct {
	cfg     *config.Config
	logger  zerolog.Logger
	store   *content.Store
	dedup   cache.Cache
	tracing *telemetry.Provider
	server  *http.Server
}

// New builds every dependency described by cfg. Nothing is listening until
// Run or Serve is called.
func New(ctx context.Context, cfg *config.Config, version string) (*App, error) {
	logger := xglog.WithComponent("app")

	store, err := content.NewStore(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	dedup, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	tracing, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    ServiceName,
		ServiceVersion: version,
		ExporterType:   cfg.Tracing.Exporter,
		Endpoint:       cfg.Tracing.Endpoint,
		SamplingRate:   cfg.Tracing.SamplingRate,
	})
	if err != nil {
		_ = dedup.Close()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	deliverer, contactCfg := newDeliverer(cfg.Contact)
	svc := handlers.Services{
		Site:         services.NewSiteService(store),
		Projects:     services.NewProjectService(store),
		Technologies: services.NewTechnologyService(store),
		Contact:      services.NewContactService(store, deliverer, dedup, contactCfg),
	}
	if rc, ok := dedup.(*cache.RedisCache); ok {
		svc.Ready = rc.HealthCheck
	}
	router := handlers.SetupRoutes(cfg, svc)

	if len(cfg.AllowedOrigins) == 0 {
		logger.Warn().
			Str(xglog.FieldEvent, "csrf.no_allowed_origins").
			Msg("allowed_origins is empty: contact POSTs through a reverse proxy will be rejected, set SITE_ALLOWED_ORIGINS to the public origin")
	}

	logger.Info().
		Str("contact_mode", cfg.Contact.Mode).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("tracing", cfg.Tracing.Enabled).
		Str("content", contentSource(store.Path())).
		Msg("application initialized")

	return &App{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		dedup:   dedup,
		tracing: tracing,
		server: &http.Server{
			Addr:              cfg.ServerAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests and the static generator.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run listens on the configured address and blocks until ctx is cancelled
// or a component fails.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.ServerAddr)
	if err != nil {
		a.close()
		return fmt.Errorf("listen on %s: %w", a.cfg.ServerAddr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve runs the server on ln alongside the content watcher. Cancelling
// ctx shuts the server down gracefully within the configured timeout.
// Resources are released before Serve returns.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer a.close()

	g, gctx := errgroup.WithContext(ctx)

	// Hot reload is best-effort: the server keeps the content it has.
	g.Go(func() error {
		if err := a.store.Watch(gctx); err != nil {
			a.logger.Warn().Err(err).Str(xglog.FieldEvent, "content.watcher_failed").Msg("content watcher stopped")
		}
		return nil
	})

	g.Go(func() error {
		a.logger.Info().
			Str(xglog.FieldEvent, "http.listening").
			Str("addr", ln.Addr().String()).
			Msg("HTTP server listening")
		if err := a.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		a.logger.Info().Str(xglog.FieldEvent, "http.shutdown").Msg("shutting down HTTP server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (a *App) close() {
	stats := a.dedup.Stats()
	a.logger.Info().
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("sets", stats.Sets).
		Int("size", stats.CurrentSize).
		Msg("dedup cache stats")
	if err := a.dedup.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("close dedup cache")
	}
	if err := a.tracing.Shutdown(context.Background()); err != nil {
		a.logger.Warn().Err(err).Msg("shutdown tracing")
	}
}

func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	if cfg.Backend != config.CacheBackendRedis {
		return cache.NewMemoryCache(cacheCleanupInterval), nil
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, xglog.WithComponent("cache"))
	if err != nil {
		return nil, fmt.Errorf("init redis cache: %w", err)
	}
	return rc, nil
}

func newDeliverer(cfg config.ContactConfig) (contact.Deliverer, services.ContactConfig) {
	svcCfg := services.ContactConfig{DedupTTL: cfg.DedupTTL}
	if cfg.Mode == config.ContactModeWebhook {
		svcCfg.Timeout = cfg.WebhookTimeout
		return contact.NewWebhookDeliverer(contact.WebhookConfig{
			URL:              cfg.WebhookURL,
			Timeout:          cfg.WebhookTimeout,
			RatePerSecond:    webhookRatePerSecond,
			Burst:            webhookBurst,
			FailureThreshold: webhookFailureThreshold,
			ResetTimeout:     webhookResetTimeout,
		}), svcCfg
	}
	return contact.NewSimulatedDeliverer(cfg.Delay), svcCfg
}

func contentSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
