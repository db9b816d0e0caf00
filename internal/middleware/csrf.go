package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"aicloudmania.dev/internal/log"
)

// CSRF rejects state-changing requests whose Origin (or Referer) is neither
// the serving host nor one of allowedOrigins. Safe methods pass through.
// Same-origin is only trusted when no forwarding headers are present.
func CSRF(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowed["*"] = true
			continue
		}
		if n, ok := normalizeOrigin(o); ok {
			allowed[n] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			origin := requestOrigin(r)
			if origin == "" {
				forbidden(w, r, "missing origin or referer header")
				return
			}
			if !allowed["*"] && !allowed[origin] && !sameOrigin(origin, r) {
				forbidden(w, r, "origin not trusted")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter, r *http.Request, detail string) {
	logger := log.WithComponentFromContext(r.Context(), "csrf")
	logger.Warn().
		Str(log.FieldEvent, "csrf.rejected").
		Str(log.FieldPath, r.URL.Path).
		Str("origin", r.Header.Get("Origin")).
		Msg(detail)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Forbidden", "detail": detail})
}

func requestOrigin(r *http.Request) string {
	if o, ok := normalizeOrigin(r.Header.Get("Origin")); ok {
		return o
	}
	ref, err := url.Parse(r.Header.Get("Referer"))
	if err != nil || ref.Scheme == "" || ref.Host == "" {
		return ""
	}
	o, _ := normalizeOrigin(ref.Scheme + "://" + ref.Host)
	return o
}

func sameOrigin(origin string, r *http.Request) bool {
	for _, h := range []string{"Forwarded", "X-Forwarded-For", "X-Forwarded-Host", "X-Forwarded-Proto"} {
		if r.Header.Get(h) != "" {
			return false
		}
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if r.Host == "" {
		return false
	}
	self, ok := normalizeOrigin(scheme + "://" + r.Host)
	return ok && self == origin
}

// normalizeOrigin lowercases scheme and host and drops default ports.
func normalizeOrigin(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}
	port := u.Port()
	if port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return "", false
		}
	}
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}
	authority := host
	if port != "" {
		authority = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		authority = "[" + host + "]"
	}
	return scheme + "://" + authority, true
}
