package httpapi

import (
	"context"
	"log"
	"net/http"
	"strings"

	"tableside/internal/domain"
	"tableside/internal/service"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionMiddleware resolves the caller's token to a session snapshot and
// attaches it to the request context. Requests without a valid token pass
// through with no session; the handlers decide what needs one.
func SessionMiddleware(sessions service.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Get(r.Context(), token)
			if err != nil {
				log.Printf("WARNING: failed to load session: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if session != nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey, session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := r.Cookie("session"); err == nil {
		return cookie.Value
	}
	return ""
}

// SessionFromContext returns the authenticated session, or nil.
func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionKey).(*domain.Session)
	return session
}
