// Package api provides the REST API server of the HarvestLink storefront.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	adminv1 "github.com/harvestlink/harvestlink/internal/api/admin/v1"
	"github.com/harvestlink/harvestlink/internal/api/health"
	storefrontv1 "github.com/harvestlink/harvestlink/internal/api/storefront/v1"
	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/authz"
	"github.com/harvestlink/harvestlink/internal/ratelimit"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/uploads"
)

// SessionManager loads sessions and binds them to users
type SessionManager interface {
	Middleware(next http.Handler) http.Handler
	Login(ctx context.Context, userID uuid.UUID, passwordChangedAt time.Time) error
	Refresh(ctx context.Context, userID uuid.UUID, passwordChangedAt time.Time) error
	Logout(ctx context.Context) error
	UserID(ctx context.Context) (uuid.UUID, bool)
	AuthTime(ctx context.Context) time.Time
}

// ServerOption configures the API server
type ServerOption func(*serverConfig)

// serverConfig holds the server configuration
type serverConfig struct {
	middlewares    []func(http.Handler) http.Handler
	sessions       SessionManager
	authorizer     authz.Authorizer
	limiter        *ratelimit.Limiter
	images         *uploads.Store
	metricsHandler http.Handler
	staticDir      string
	adminSettings  func() adminv1.Settings
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithSessions sets the session manager backing authentication
func WithSessions(sessions SessionManager) ServerOption {
	return func(cfg *serverConfig) {
		cfg.sessions = sessions
	}
}

// WithAuthorizer sets the policy engine. Defaults to the built-in policies.
func WithAuthorizer(authorizer authz.Authorizer) ServerOption {
	return func(cfg *serverConfig) {
		cfg.authorizer = authorizer
	}
}

// WithRateLimiter sets the request limiter. Defaults to no limits.
func WithRateLimiter(limiter *ratelimit.Limiter) ServerOption {
	return func(cfg *serverConfig) {
		cfg.limiter = limiter
	}
}

// WithImageStore enables product image uploads and serves them at /uploads/
func WithImageStore(store *uploads.Store) ServerOption {
	return func(cfg *serverConfig) {
		cfg.images = store
	}
}

// WithMetricsHandler serves Prometheus metrics at /metrics
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.metricsHandler = h
	}
}

// WithStaticDir serves storefront assets for paths no API route matches
func WithStaticDir(dir string) ServerOption {
	return func(cfg *serverConfig) {
		cfg.staticDir = dir
	}
}

// WithAdminSettings sets the source of the back office's configured values
func WithAdminSettings(fn func() adminv1.Settings) ServerOption {
	return func(cfg *serverConfig) {
		cfg.adminSettings = fn
	}
}

// NewServer creates and configures the HTTP router with the given service and options
func NewServer(svc service.Service, sessions SessionManager, opts ...ServerOption) (*chi.Mux, error) {
	cfg := &serverConfig{
		sessions: sessions,
		limiter:  ratelimit.New(nil),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.authorizer == nil {
		authorizer, err := authz.NewCedarAuthorizer(nil)
		if err != nil {
			return nil, err
		}
		cfg.authorizer = authorizer
	}

	r := chi.NewRouter()

	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	// Set before mounting so mounted routers inherit it
	if cfg.staticDir != "" {
		r.NotFound(staticHandler(cfg.staticDir).ServeHTTP)
	}

	r.Mount("/", health.Router(svc))

	if cfg.metricsHandler != nil {
		r.Handle("/metrics", cfg.metricsHandler)
	}
	if cfg.images != nil {
		r.Handle(uploads.PathPrefix+"*", cfg.images.Handler())
	}

	var adminOpts []adminv1.Option
	if cfg.images != nil {
		adminOpts = append(adminOpts, adminv1.WithImageStore(cfg.images))
	}
	if cfg.adminSettings != nil {
		adminOpts = append(adminOpts, adminv1.WithSettings(cfg.adminSettings))
	}

	identity := auth.NewMiddleware(cfg.sessions, svc)
	r.Group(func(r chi.Router) {
		r.Use(cfg.sessions.Middleware)
		r.Use(identity.LoadIdentity)

		r.Mount("/api/v1", storefrontv1.Router(svc, cfg.sessions, cfg.authorizer, cfg.limiter))
		r.Mount("/api/admin/v1", adminv1.Router(svc, cfg.authorizer, adminOpts...))
	})

	return r, nil
}
