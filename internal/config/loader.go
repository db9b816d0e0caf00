package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader applies defaults, the YAML file and the environment in that order.
type Loader struct {
	path   string
	getenv func(string) (string, bool)
}

// NewLoader returns a loader reading the file at path; an empty path skips
// the file layer.
func NewLoader(path string) *Loader {
	return &Loader{path: path, getenv: os.LookupEnv}
}

// Load builds and validates the configuration.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if l.path != "" {
		if err := l.loadFile(&cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config) error {
	path := filepath.Clean(l.path)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (l *Loader) mergeEnv(cfg *Config) {
	e := newEnvReader(l.getenv)

	cfg.ServerAddr = e.String("SERVER_ADDR", cfg.ServerAddr)
	cfg.LogLevel = e.String("SITE_LOG_LEVEL", cfg.LogLevel)
	cfg.ContentPath = e.String("SITE_CONTENT_PATH", cfg.ContentPath)
	cfg.StaticDir = e.String("SITE_STATIC_DIR", cfg.StaticDir)
	cfg.ShutdownTimeout = e.Duration("SITE_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.AllowedOrigins = e.List("SITE_ALLOWED_ORIGINS", cfg.AllowedOrigins)

	cfg.Contact.Mode = e.String("SITE_CONTACT_MODE", cfg.Contact.Mode)
	cfg.Contact.Delay = e.Duration("SITE_CONTACT_DELAY", cfg.Contact.Delay)
	cfg.Contact.WebhookURL = e.String("SITE_CONTACT_WEBHOOK_URL", cfg.Contact.WebhookURL)
	cfg.Contact.WebhookTimeout = e.Duration("SITE_CONTACT_WEBHOOK_TIMEOUT", cfg.Contact.WebhookTimeout)
	cfg.Contact.RatePerMinute = e.Int("SITE_CONTACT_RATE_PER_MIN", cfg.Contact.RatePerMinute)
	cfg.Contact.DedupTTL = e.Duration("SITE_DEDUP_TTL", cfg.Contact.DedupTTL)

	cfg.Cache.Backend = e.String("SITE_CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.RedisAddr = e.String("SITE_REDIS_ADDR", cfg.Cache.RedisAddr)
	cfg.Cache.RedisPassword = e.String("SITE_REDIS_PASSWORD", cfg.Cache.RedisPassword)
	cfg.Cache.RedisDB = e.Int("SITE_REDIS_DB", cfg.Cache.RedisDB)

	cfg.Tracing.Enabled = e.Bool("SITE_TRACING_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.Exporter = e.String("SITE_TRACING_EXPORTER", cfg.Tracing.Exporter)
	cfg.Tracing.Endpoint = e.String("SITE_TRACING_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.SamplingRate = e.Float("SITE_TRACING_SAMPLING_RATE", cfg.Tracing.SamplingRate)
}
