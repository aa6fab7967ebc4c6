package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	rl := NewRateLimiter(1, 1, []string{"10.0.0.1"})

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"direct", "192.0.2.10:4000", nil, "192.0.2.10"},
		{"spoofed forwarded for", "192.0.2.10:4000", map[string]string{"X-Forwarded-For": "198.51.100.7"}, "192.0.2.10"},
		{"spoofed real ip", "192.0.2.10:4000", map[string]string{"X-Real-IP": "198.51.100.7"}, "192.0.2.10"},
		{"trusted proxy", "10.0.0.1:4000", map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"}, "198.51.100.7"},
		{"trusted proxy real ip", "10.0.0.1:4000", map[string]string{"X-Forwarded-For": "garbage", "X-Real-IP": "198.51.100.8"}, "198.51.100.8"},
		{"trusted proxy without headers", "10.0.0.1:4000", nil, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := rl.clientIP(req); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMiddlewareIgnoresSpoofedForwardedFor(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	serve := func(h http.Handler, remote, forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	direct := NewRateLimiter(0.001, 1, nil).Middleware(ok)
	if code := serve(direct, "192.0.2.10:4000", "198.51.100.1"); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := serve(direct, "192.0.2.10:4001", "198.51.100.2"); code != http.StatusTooManyRequests {
		t.Fatalf("expected a fresh forwarded address to share the bucket, got %d", code)
	}

	proxied := NewRateLimiter(0.001, 1, []string{"10.0.0.1"}).Middleware(ok)
	if code := serve(proxied, "10.0.0.1:4000", "198.51.100.1"); code != http.StatusOK {
		t.Fatalf("expected first client to pass, got %d", code)
	}
	if code := serve(proxied, "10.0.0.1:4000", "198.51.100.2"); code != http.StatusOK {
		t.Fatalf("expected second client behind the proxy to pass, got %d", code)
	}
	if code := serve(proxied, "10.0.0.1:4000", "198.51.100.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected first client to be limited, got %d", code)
	}
}
