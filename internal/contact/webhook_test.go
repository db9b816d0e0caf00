package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xglog "aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/models"
	"aicloudmania.dev/internal/resilience"
)

func TestWebhookDeliverer_PostsSubmission(t *testing.T) {
	var got models.Submission
	var headers http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	d := NewWebhookDeliverer(WebhookConfig{URL: srv.URL, Timeout: time.Second})
	sub := models.Submission{
		ID:         "sub-1",
		ReceivedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Request:    validRequest(),
	}
	ctx := xglog.ContextWithRequestID(context.Background(), "req-9")

	require.NoError(t, d.Deliver(ctx, sub))
	assert.Equal(t, sub, got)
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "sub-1", headers.Get("Idempotency-Key"))
	assert.Equal(t, "req-9", headers.Get("X-Request-ID"))
}

func TestWebhookDeliverer_Non2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewWebhookDeliverer(WebhookConfig{URL: srv.URL})
	err := d.Deliver(context.Background(), models.Submission{ID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestWebhookDeliverer_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := NewWebhookDeliverer(WebhookConfig{URL: srv.URL, FailureThreshold: 2, ResetTimeout: time.Minute})
	for i := 0; i < 2; i++ {
		require.Error(t, d.Deliver(context.Background(), models.Submission{}))
	}

	err := d.Deliver(context.Background(), models.Submission{})
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWebhookDeliverer_ThrottleHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewWebhookDeliverer(WebhookConfig{URL: srv.URL, RatePerSecond: 0.001, Burst: 1})
	require.NoError(t, d.Deliver(context.Background(), models.Submission{}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Deliver(ctx, models.Submission{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
