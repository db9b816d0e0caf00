// Package config loads the server configuration. Values come from built-in
// defaults, then an optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Contact delivery modes.
const (
	ContactModeSimulated = "simulated"
	ContactModeWebhook   = "webhook"
)

// Cache backends for submission dedup.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `yaml:"server_addr"`
	LogLevel        string        `yaml:"log_level"`
	ContentPath     string        `yaml:"content_path"`
	StaticDir       string        `yaml:"static_dir"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// AllowedOrigins must list the public origin when running behind a proxy.
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Contact        ContactConfig `yaml:"contact"`
	Cache          CacheConfig   `yaml:"cache"`
	Tracing        TracingConfig `yaml:"tracing"`
}

// ContactConfig controls how contact submissions are delivered.
type ContactConfig struct {
	Mode           string        `yaml:"mode"`
	Delay          time.Duration `yaml:"delay"`
	WebhookURL     string        `yaml:"webhook_url"`
	WebhookTimeout time.Duration `yaml:"webhook_timeout"`
	RatePerMinute  int           `yaml:"rate_per_minute"`
	DedupTTL       time.Duration `yaml:"dedup_ttl"`
}

// CacheConfig selects the dedup cache backend.
type CacheConfig struct {
	Backend       string `yaml:"backend"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"`
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"sampling_rate"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		ServerAddr:      ":8080",
		LogLevel:        "info",
		StaticDir:       "./static",
		ShutdownTimeout: 10 * time.Second,
		Contact: ContactConfig{
			Mode:           ContactModeSimulated,
			Delay:          time.Second,
			WebhookTimeout: 5 * time.Second,
			RatePerMinute:  5,
			DedupTTL:       10 * time.Minute,
		},
		Cache: CacheConfig{Backend: CacheBackendMemory},
		Tracing: TracingConfig{
			Exporter:     "grpc",
			Endpoint:     "localhost:4317",
			SamplingRate: 1.0,
		},
	}
}

// Load reads configuration from the optional YAML file at path and the
// process environment.
func Load(path string) (*Config, error) {
	cfg, err := NewLoader(path).Load()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerAddr == "" {
		errs = append(errs, errors.New("server_addr must not be empty"))
	}
	switch c.Contact.Mode {
	case ContactModeSimulated:
	case ContactModeWebhook:
		if c.Contact.WebhookURL == "" {
			errs = append(errs, errors.New("contact.webhook_url is required in webhook mode"))
		} else if u, err := url.Parse(c.Contact.WebhookURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("contact.webhook_url %q is not an http(s) URL", c.Contact.WebhookURL))
		}
	default:
		errs = append(errs, fmt.Errorf("contact.mode %q is not one of simulated, webhook", c.Contact.Mode))
	}
	if c.Contact.RatePerMinute < 1 {
		errs = append(errs, errors.New("contact.rate_per_minute must be at least 1"))
	}
	for name, d := range map[string]time.Duration{
		"shutdown_timeout":        c.ShutdownTimeout,
		"contact.delay":           c.Contact.Delay,
		"contact.webhook_timeout": c.Contact.WebhookTimeout,
		"contact.dedup_ttl":       c.Contact.DedupTTL,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}
	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("cache.redis_addr is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend %q is not one of memory, redis", c.Cache.Backend))
	}
	if c.Tracing.Enabled {
		if c.Tracing.Exporter != "grpc" && c.Tracing.Exporter != "http" {
			errs = append(errs, fmt.Errorf("tracing.exporter %q is not one of grpc, http", c.Tracing.Exporter))
		}
		if c.Tracing.Endpoint == "" {
			errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
		}
	}
	return errors.Join(errs...)
}
