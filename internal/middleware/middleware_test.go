package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicloudmania.dev/internal/log"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func TestRecoveryReturnsJSONWithRequestID(t *testing.T) {
	h := RequestID(Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body["request_id"])
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "abc-1", seen)
	})

	t.Run("unprintable replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "bad id")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEqual(t, "bad id", seen)
	})
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders("")(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, DefaultCSP, rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestCSRF(t *testing.T) {
	h := CSRF([]string{"https://aicloudmania.com"})(http.HandlerFunc(ok))

	tests := []struct {
		name    string
		method  string
		headers map[string]string
		want    int
	}{
		{name: "safe method", method: http.MethodGet, want: http.StatusOK},
		{name: "missing origin", method: http.MethodPost, want: http.StatusForbidden},
		{name: "same origin", method: http.MethodPost, headers: map[string]string{"Origin": "http://example.com"}, want: http.StatusOK},
		{name: "same origin default port", method: http.MethodPost, headers: map[string]string{"Origin": "http://EXAMPLE.com:80"}, want: http.StatusOK},
		{name: "referer fallback", method: http.MethodPost, headers: map[string]string{"Referer": "http://example.com/#contact"}, want: http.StatusOK},
		{name: "allowed origin", method: http.MethodPost, headers: map[string]string{"Origin": "https://aicloudmania.com"}, want: http.StatusOK},
		{name: "foreign origin", method: http.MethodPost, headers: map[string]string{"Origin": "https://evil.test"}, want: http.StatusForbidden},
		{name: "same origin behind proxy", method: http.MethodPost, headers: map[string]string{"Origin": "http://example.com", "X-Forwarded-For": "10.0.0.1"}, want: http.StatusForbidden},
		{name: "allowed origin behind proxy", method: http.MethodPost, headers: map[string]string{"Origin": "https://aicloudmania.com", "X-Forwarded-Proto": "https"}, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://example.com/contact", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(2, time.Minute)(http.HandlerFunc(ok))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many requests")
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	Apply(r, StackConfig{EnableMetrics: true, EnableLogging: true})
	r.Get("/api/projects/{id}", ok)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/metrics-probe", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Positive(t, testutil.CollectAndCount(httpRequestDuration))

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	var routes []string
	for _, mf := range families {
		if mf.GetName() != "site_http_request_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "route" {
					routes = append(routes, l.GetValue())
				}
			}
		}
	}
	assert.Contains(t, routes, "/api/projects/{id}")
	assert.NotContains(t, strings.Join(routes, ","), "metrics-probe")
}
