package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/api"
	adminv1 "github.com/harvestlink/harvestlink/internal/api/admin/v1"
	"github.com/harvestlink/harvestlink/internal/app/storage"
	"github.com/harvestlink/harvestlink/internal/authz"
	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/filtering"
	"github.com/harvestlink/harvestlink/internal/jobs"
	"github.com/harvestlink/harvestlink/internal/ratelimit"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/session"
	"github.com/harvestlink/harvestlink/internal/telemetry"
	"github.com/harvestlink/harvestlink/internal/uploads"
)

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 10 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second

	// CSRFKeyEnv supplies the CSRF key when no key file is configured
	CSRFKeyEnv = config.EnvPrefix + "_CSRF_KEY"

	csrfKeyLength = 32
)

// StorefrontAppOptions is a function that configures the storefront app builder
type StorefrontAppOptions func(*storefrontAppConfig) error

// storefrontAppConfig collects the builder inputs.
// It supports dependency injection for testing while providing sensible defaults for production
type storefrontAppConfig struct {
	configManager config.Manager
	configPath    string

	// Optional component overrides (primarily for testing)
	storageFactory storage.Factory
	coordinator    jobs.Coordinator

	// HTTP server options
	address        string
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration

	// Telemetry components
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metricsHandler http.Handler

	// Live settings swapped by configuration reloads
	pricing    *service.LivePricing
	visibility *filtering.Visibility
}

func baseConfig(opts ...StorefrontAppOptions) (*storefrontAppConfig, error) {
	cfg := &storefrontAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: defaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.configManager == nil && cfg.configPath == "" {
		return nil, fmt.Errorf("configuration is required")
	}

	return cfg, nil
}

// NewStorefrontApp wires every component and returns an app ready to Start
func NewStorefrontApp(
	ctx context.Context,
	opts ...StorefrontAppOptions,
) (*StorefrontApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}

	if err := buildConfigManager(cfg); err != nil {
		return nil, err
	}
	current := cfg.configManager.GetConfig()

	// Create storage factory (single decision point for database vs memory)
	if cfg.storageFactory == nil {
		cfg.storageFactory, err = storage.NewStorageFactory(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage factory: %w", err)
		}
	}

	// Ensure cleanup happens on error
	var cleanupNeeded = true
	defer func() {
		if cleanupNeeded {
			cfg.storageFactory.Cleanup()
		}
	}()

	svc, err := buildServiceComponents(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	sessions := cfg.storageFactory.CreateSessionManager(current.Session)
	limiter := ratelimit.New(current.RateLimit)

	coord, err := buildJobComponents(cfg, svc)
	if err != nil {
		sessions.Close()
		return nil, fmt.Errorf("failed to build job components: %w", err)
	}

	httpServer, err := buildHTTPServer(ctx, cfg, svc, sessions, limiter)
	if err != nil {
		sessions.Close()
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	appCtx, cancel := context.WithCancel(ctx)

	// Cleanup is now handled by the app
	cleanupNeeded = false

	factory := cfg.storageFactory
	cancelFunc := func() {
		cancel()
		sessions.Close()
		if err := cfg.configManager.Close(); err != nil {
			slog.Warn("Failed to close configuration watcher", "error", err)
		}
		factory.Cleanup()
	}

	return &StorefrontApp{
		config: current,
		components: &AppComponents{
			Jobs:          coord,
			Service:       svc,
			Sessions:      sessions,
			Limiter:       limiter,
			ConfigManager: cfg.configManager,
		},
		httpServer: httpServer,
		ctx:        appCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// WithConfig sets a fixed configuration that is never reloaded
func WithConfig(c *config.Config) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		if c == nil {
			return fmt.Errorf("config cannot be nil")
		}
		cfg.configManager = config.NewStaticManager(c)
		return nil
	}
}

// WithConfigFile loads the configuration from path and reloads it when the file changes
func WithConfigFile(path string) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		if path == "" {
			return fmt.Errorf("config path cannot be empty")
		}
		cfg.configPath = path
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares replaces the default HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithStorageFactory allows injecting a custom storage factory (for testing)
func WithStorageFactory(f storage.Factory) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		cfg.storageFactory = f
		return nil
	}
}

// WithJobCoordinator allows injecting a custom background job coordinator (for testing)
func WithJobCoordinator(c jobs.Coordinator) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		cfg.coordinator = c
		return nil
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider for HTTP and business metrics
func WithMeterProvider(mp metric.MeterProvider) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		cfg.meterProvider = mp
		return nil
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider
func WithTracerProvider(tp trace.TracerProvider) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		cfg.tracerProvider = tp
		return nil
	}
}

// WithMetricsHandler exposes a Prometheus scrape endpoint at /metrics
func WithMetricsHandler(h http.Handler) StorefrontAppOptions {
	return func(cfg *storefrontAppConfig) error {
		cfg.metricsHandler = h
		return nil
	}
}

// buildConfigManager creates the live settings and the manager that keeps them current
func buildConfigManager(b *storefrontAppConfig) error {
	b.pricing = service.NewLivePricing(service.Pricing{})
	visibility, err := filtering.NewVisibility(nil)
	if err != nil {
		return fmt.Errorf("failed to create catalog visibility: %w", err)
	}
	b.visibility = visibility

	if b.configManager == nil {
		b.configManager, err = config.NewManager(b.configPath, config.WithReloadHook(b.applyReloadable))
		if err != nil {
			return err
		}
		return nil
	}

	b.applyReloadable(b.configManager.GetConfig())
	return nil
}

// applyReloadable pushes the settings that change without a restart
func (b *storefrontAppConfig) applyReloadable(c *config.Config) {
	b.pricing.Update(pricingFrom(c.Checkout))
	if err := b.visibility.Update(c.Catalog.Filter); err != nil {
		slog.Error("Keeping previous catalog filter", "error", err)
	}
}

func pricingFrom(c config.CheckoutConfig) service.Pricing {
	return service.Pricing{
		ShippingFeeCents:           c.GetShippingFeeCents(),
		FreeShippingThresholdCents: c.GetFreeShippingThresholdCents(),
	}
}

// buildServiceComponents creates the storefront service through the storage factory
func buildServiceComponents(
	ctx context.Context,
	b *storefrontAppConfig,
) (service.Service, error) {
	slog.Info("Initializing service components")

	deps := storage.ServiceDeps{
		Visibility: b.visibility,
		Pricing:    b.pricing,
	}
	if b.meterProvider != nil {
		metrics, err := telemetry.NewCommerceMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create commerce metrics: %w", err)
		}
		deps.Metrics = metrics
	}
	if b.tracerProvider != nil {
		deps.Tracer = b.tracerProvider
	}

	svc, err := b.storageFactory.CreateService(ctx, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return svc, nil
}

// buildJobComponents creates the top products coordinator. Returns nil when the job is disabled.
func buildJobComponents(b *storefrontAppConfig, svc service.Service) (jobs.Coordinator, error) {
	if b.coordinator != nil {
		return b.coordinator, nil
	}

	jobsCfg := b.configManager.GetConfig().Jobs
	if jobsCfg.TopProducts.Disabled {
		slog.Info("Top products job disabled")
		return nil, nil
	}

	var opts []jobs.Option
	if b.meterProvider != nil {
		jobMetrics, err := telemetry.NewJobMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create job metrics: %w", err)
		}
		opts = append(opts, jobs.WithJobMetrics(jobMetrics))
	}

	return jobs.New(svc, jobsCfg, opts...), nil
}

// buildHTTPServer builds the HTTP server with router and middleware
func buildHTTPServer(
	_ context.Context,
	b *storefrontAppConfig,
	svc service.Service,
	sessions api.SessionManager,
	limiter *ratelimit.Limiter,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")
	cfg := b.configManager.GetConfig()

	// Use default middlewares if not provided
	if b.middlewares == nil {
		b.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	// Metrics and tracing go first to capture every request, including rejected ones
	var outer []func(http.Handler) http.Handler
	if b.meterProvider != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		if metricsMiddleware != nil {
			outer = append(outer, metricsMiddleware)
			slog.Info("HTTP metrics middleware enabled")
		}
	}
	if b.tracerProvider != nil {
		outer = append(outer, telemetry.TracingMiddleware(b.tracerProvider))
	}
	b.middlewares = append(outer, b.middlewares...)

	if cfg.CORS != nil {
		b.middlewares = append(b.middlewares, api.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge))
		slog.Info("CORS enabled", "origins", cfg.CORS.AllowedOrigins)
	}
	if cfg.CSRF != nil && cfg.CSRF.Enabled {
		key, err := loadCSRFKey(cfg.CSRF.AuthKeyFile)
		if err != nil {
			return nil, err
		}
		b.middlewares = append(b.middlewares, api.CSRFMiddleware(key, cfg.Session.Secure, cfg.CSRF.TrustedOrigins))
		slog.Info("CSRF protection enabled")
	}

	images, err := uploads.NewStore(cfg.Uploads)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload store: %w", err)
	}

	serverOpts := []api.ServerOption{
		api.WithMiddlewares(b.middlewares...),
		api.WithRateLimiter(limiter),
		api.WithImageStore(images),
		api.WithAdminSettings(adminSettings(b.configManager)),
	}
	if cfg.Authz != nil && cfg.Authz.PolicyFile != "" {
		authorizer, err := authz.NewCedarAuthorizerFromFile(cfg.Authz.PolicyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load authorization policies: %w", err)
		}
		serverOpts = append(serverOpts, api.WithAuthorizer(authorizer))
	}
	if b.metricsHandler != nil {
		serverOpts = append(serverOpts, api.WithMetricsHandler(b.metricsHandler))
	}
	if cfg.Static != nil {
		serverOpts = append(serverOpts, api.WithStaticDir(cfg.Static.Dir))
	}

	router, err := api.NewServer(svc, sessions, serverOpts...)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:         b.address,
		Handler:      router,
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}

// adminSettings reads the dashboard settings from the live configuration
func adminSettings(m config.Manager) func() adminv1.Settings {
	return func() adminv1.Settings {
		cfg := m.GetConfig()
		return adminv1.Settings{
			LowStockThreshold: cfg.Catalog.GetLowStockThreshold(),
			TopProductsWindow: cfg.Jobs.TopProducts.GetWindow(),
			TopProductsSize:   cfg.Jobs.TopProducts.GetSize(),
		}
	}
}

// loadCSRFKey reads the CSRF key from path or the environment. The key is
// either 32 raw bytes or 64 hex characters. Without one a random key is
// generated and tokens stop validating after a restart.
func loadCSRFKey(path string) ([]byte, error) {
	var raw string
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read CSRF key from file %s: %w", path, err)
		}
		raw = strings.TrimSpace(string(data))
	} else {
		raw = os.Getenv(CSRFKeyEnv)
	}

	if raw == "" {
		slog.Warn("No CSRF key configured, generating an ephemeral one", "env", CSRFKeyEnv)
		key := make([]byte, csrfKeyLength)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate CSRF key: %w", err)
		}
		return key, nil
	}

	if len(raw) == hex.EncodedLen(csrfKeyLength) {
		if key, err := hex.DecodeString(raw); err == nil {
			return key, nil
		}
	}
	if len(raw) != csrfKeyLength {
		return nil, fmt.Errorf("CSRF key must be %d bytes or %d hex characters", csrfKeyLength, hex.EncodedLen(csrfKeyLength))
	}
	return []byte(raw), nil
}

var _ api.SessionManager = (*session.Manager)(nil)
