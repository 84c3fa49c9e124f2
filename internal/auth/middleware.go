// Package auth provides session-based authentication for the storefront API.
package auth

//go:generate mockgen -destination=mocks/mock_auth.go -package=mocks -source=middleware.go UserLoader,SessionReader

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
)

// UserLoader loads the user bound to a session
type UserLoader interface {
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
}

// SessionReader exposes the session state the middleware needs
type SessionReader interface {
	UserID(ctx context.Context) (uuid.UUID, bool)
	AuthTime(ctx context.Context) time.Time
	Logout(ctx context.Context) error
}

// Middleware resolves the session into a user for each request
type Middleware struct {
	sessions SessionReader
	users    UserLoader
}

// NewMiddleware creates the authentication middleware
func NewMiddleware(sessions SessionReader, users UserLoader) *Middleware {
	return &Middleware{sessions: sessions, users: users}
}

// LoadIdentity attaches the session's user to the request context.
// Requests without a valid session continue anonymously. A session that
// predates the user's last password change, or whose user no longer exists,
// is destroyed.
func (m *Middleware) LoadIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := m.sessions.UserID(ctx)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetUser(ctx, userID)
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			slog.InfoContext(ctx, "Session user no longer exists", "user_id", userID)
			m.destroy(ctx)
			next.ServeHTTP(w, r)
			return
		case err != nil:
			slog.ErrorContext(ctx, "Failed to load session user", "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load session")
			return
		}

		if user.PasswordChangedAt.After(m.sessions.AuthTime(ctx)) {
			slog.InfoContext(ctx, "Session predates password change", "user_id", userID)
			m.destroy(ctx)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
	})
}

func (m *Middleware) destroy(ctx context.Context) {
	if err := m.sessions.Logout(ctx); err != nil {
		slog.WarnContext(ctx, "Failed to destroy session", "error", err)
	}
}

// RequireAuth rejects anonymous requests with 401 and suspended users with 403.
// It must run after LoadIdentity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if user.Status == service.UserStatusSuspended {
			slog.WarnContext(r.Context(), "Suspended user rejected", "user_id", user.ID, "path", r.URL.Path)
			writeError(w, http.StatusForbidden, service.ErrAccountSuspended.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := struct {
		Error string `json:"error"`
	}{
		Error: message,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}
