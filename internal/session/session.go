// Package session manages server-side login sessions.
//
// Session data lives in PostgreSQL (the sessions table) or in process memory,
// following the configured storage type. The browser only holds an opaque
// token cookie.
package session

import (
	"context"
	"encoding/gob"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harvestlink/harvestlink/internal/config"
)

const (
	keyUserID   = "user_id"
	keyAuthTime = "auth_time"
)

func init() {
	gob.Register(time.Time{})
}

// cleanupInterval is how often expired sessions are purged from the store
const cleanupInterval = 5 * time.Minute

// Manager issues, reads and destroys sessions
type Manager struct {
	sm    *scs.SessionManager
	store scs.Store
}

// Option configures a Manager
type Option func(*Manager)

// WithPostgresStore keeps sessions in the sessions table
func WithPostgresStore(pool *pgxpool.Pool) Option {
	return func(m *Manager) {
		m.store = pgxstore.NewWithCleanupInterval(pool, cleanupInterval)
	}
}

// WithStore uses an arbitrary scs store
func WithStore(store scs.Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// New creates a session manager. Without a store option sessions are kept in memory.
func New(cfg config.SessionConfig, opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = memstore.NewWithCleanupInterval(cleanupInterval)
	}

	sm := scs.New()
	sm.Store = m.store
	sm.Lifetime = cfg.GetLifetime()
	sm.IdleTimeout = cfg.GetIdleTimeout()
	sm.Cookie.Name = cfg.GetCookieName()
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.Secure
	sm.Cookie.Persist = true
	sm.Cookie.Path = "/"
	sm.ErrorFunc = func(w http.ResponseWriter, r *http.Request, err error) {
		slog.ErrorContext(r.Context(), "Session store failure", "error", err, "path", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"session unavailable"}` + "\n"))
	}

	m.sm = sm
	return m
}

// Middleware loads the session for each request and saves it afterwards
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return m.sm.LoadAndSave(next)
}

// Login renews the session token and binds the session to the user.
// The recorded auth time is never earlier than the user's last password change.
func (m *Manager) Login(ctx context.Context, userID uuid.UUID, passwordChangedAt time.Time) error {
	if err := m.sm.RenewToken(ctx); err != nil {
		return err
	}

	authTime := time.Now().UTC()
	if passwordChangedAt.After(authTime) {
		authTime = passwordChangedAt.UTC()
	}

	m.sm.Put(ctx, keyUserID, userID.String())
	m.sm.Put(ctx, keyAuthTime, authTime)
	return nil
}

// Refresh re-issues the caller's session after a password change so that
// it survives the change while every other session of the user does not.
func (m *Manager) Refresh(ctx context.Context, userID uuid.UUID, passwordChangedAt time.Time) error {
	return m.Login(ctx, userID, passwordChangedAt)
}

// Logout destroys the session
func (m *Manager) Logout(ctx context.Context) error {
	return m.sm.Destroy(ctx)
}

// UserID returns the user bound to the session, if any
func (m *Manager) UserID(ctx context.Context) (uuid.UUID, bool) {
	raw := m.sm.GetString(ctx, keyUserID)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// AuthTime returns when the session was authenticated
func (m *Manager) AuthTime(ctx context.Context) time.Time {
	return m.sm.GetTime(ctx, keyAuthTime)
}

// Close stops the store's background cleanup
func (m *Manager) Close() {
	if c, ok := m.store.(interface{ StopCleanup() }); ok {
		c.StopCleanup()
	}
}
