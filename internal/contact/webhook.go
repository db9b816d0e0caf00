package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"aicloudmania.dev/internal/httpx"
	xglog "aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/models"
	"aicloudmania.dev/internal/resilience"
)

// WebhookConfig configures delivery to an external form-submission service.
type WebhookConfig struct {
	URL     string
	Timeout time.Duration
	// RatePerSecond and Burst throttle outbound calls. Zero disables throttling.
	RatePerSecond float64
	Burst         int
	// FailureThreshold consecutive failures open the breaker for ResetTimeout.
	FailureThreshold int
	ResetTimeout     time.Duration
}

// WebhookDeliverer POSTs submissions as JSON to an external URL.
type WebhookDeliverer struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
}

// NewWebhookDeliverer creates a WebhookDeliverer.
func NewWebhookDeliverer(cfg WebhookConfig) *WebhookDeliverer {
	d := &WebhookDeliverer{
		url:     cfg.URL,
		client:  httpx.NewClient(cfg.Timeout),
		breaker: resilience.NewCircuitBreaker("contact-webhook", cfg.FailureThreshold, cfg.ResetTimeout),
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return d
}

// Name implements Deliverer.
func (d *WebhookDeliverer) Name() string { return "webhook" }

// Deliver sends the submission. Any non-2xx response is a failure.
func (d *WebhookDeliverer) Deliver(ctx context.Context, sub models.Submission) error {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("webhook throttled: %w", err)
		}
	}
	return d.breaker.Execute(func() error {
		return d.post(ctx, sub)
	})
}

func (d *WebhookDeliverer) post(ctx context.Context, sub models.Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", sub.ID)
	if rid := xglog.RequestIDFromContext(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}
