package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/erazemk/glitzme/internal/auth"
)

type webContextKey string

const sessionKey webContextKey = "session"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

// RequireAdmin lets a request through only with a live admin session. An
// expired session is cleared before redirecting to the login page.
func RequireAdmin(gate *auth.Gate, sessions auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.Load(r)
			if err != nil {
				slog.Error("failed to load admin session", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			if !gate.IsAuthenticated(session) {
				if session != nil {
					if err := sessions.Clear(w, r); err != nil {
						slog.Error("failed to clear expired session", "error", err)
					}
					slog.Info("admin session expired", "path", r.URL.Path)
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the admin session stored by RequireAdmin.
func SessionFrom(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionKey).(*auth.Session)
	return session
}
