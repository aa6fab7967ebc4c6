package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name      string
		origins   []string
		origin    string
		preflight bool
		wantAllow string
		wantNext  bool
	}{
		{"wildcard", []string{"*"}, "https://any.example", false, "*", true},
		{"listed origin", []string{"https://counsel.example.org"}, "https://counsel.example.org", false, "https://counsel.example.org", true},
		{"unlisted origin", []string{"https://counsel.example.org"}, "https://evil.example", false, "", true},
		{"preflight", []string{"https://counsel.example.org"}, "https://counsel.example.org", true, "https://counsel.example.org", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			method := http.MethodGet
			if tt.preflight {
				method = http.MethodOptions
			}
			req := httptest.NewRequest(method, "/v1/courses", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			CORS(tt.origins)(next).ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Fatalf("expected allow origin %q, got %q", tt.wantAllow, got)
			}
			if reached != tt.wantNext {
				t.Fatalf("expected next reached=%v", tt.wantNext)
			}
			if tt.preflight && rec.Header().Get("Access-Control-Allow-Methods") != http.MethodPost {
				t.Fatalf("expected preflight to allow POST, got %q", rec.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
