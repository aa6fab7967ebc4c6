package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"careercompass/internal/service"
)

type contextKey string

const CounselorIDKey contextKey = "counselorId"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireCounselor validates a counselor JWT from the Authorization header or
// the token query param (websocket upgrades cannot set headers).
func (m *AuthMiddleware) RequireCounselor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			unauthorized(w, "missing authorization")
			return
		}

		claims, err := m.authSvc.ValidateCounselorToken(token)
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), CounselorIDKey, claims.CounselorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession admits the student holding the token for the {id} session in
// the path, and any counselor.
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			unauthorized(w, "missing authorization")
			return
		}

		ctx := r.Context()
		if claims, err := m.authSvc.ValidateStudentToken(token); err == nil {
			if claims.SessionID != mux.Vars(r)["id"] {
				http.Error(w, `{"error":"token does not grant access to this assessment"}`, http.StatusForbidden)
				return
			}
		} else if claims, err := m.authSvc.ValidateCounselorToken(token); err == nil {
			ctx = context.WithValue(ctx, CounselorIDKey, claims.CounselorID)
		} else {
			unauthorized(w, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCounselorID extracts counselor ID from context
func GetCounselorID(ctx context.Context) string {
	if v, ok := ctx.Value(CounselorIDKey).(string); ok {
		return v
	}
	return ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	http.Error(w, `{"error":"`+msg+`"}`, http.StatusUnauthorized)
}

func extractToken(r *http.Request) string {
	if t := extractBearerToken(r); t != "" {
		return t
	}
	return r.URL.Query().Get("token")
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
