package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tradesim-dev/tradesim/internal/auth"
)

type ctxKey string

const ctxUserIDKey ctxKey = "uid"

// UserID returns the authenticated user for this request. Handlers
// behind Require can assume it is set.
func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(string)
	return v, ok
}

// WithUserID is for tests wiring a request past the session check.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, userID)
}

// SessionCookie carries the session token between requests.
const SessionCookie = "session"

type Session struct {
	TM *auth.TokenManager
}

func NewSession(tm *auth.TokenManager) *Session { return &Session{TM: tm} }

// Require guards the authenticated surface. The token is read from the
// session cookie or an Authorization bearer header; anything else is
// redirected to /login.
func (m *Session) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			token = c.Value
		}
		if token == "" {
			if ah := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				token = strings.TrimSpace(ah[len("Bearer "):])
			}
		}
		if token == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		claims, err := m.TM.Parse(token)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
