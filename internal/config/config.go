// Package config provides configuration loading and management for the storefront server.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harvestlink/harvestlink/internal/telemetry"
)

// EnvPrefix is the prefix used for environment variables read by the server.
const EnvPrefix = "HARVESTLINK"

// DatabasePasswordEnv is the environment variable holding the database password.
const DatabasePasswordEnv = EnvPrefix + "_DATABASE_PASSWORD"

const (
	// StorageTypeDatabase persists everything in PostgreSQL
	StorageTypeDatabase = "database"

	// StorageTypeMemory keeps everything in process memory (development and tests)
	StorageTypeMemory = "memory"
)

// Defaults applied when a value is not configured.
const (
	DefaultSessionCookieName   = "harvestlink_session"
	DefaultSessionLifetime     = 24 * time.Hour
	DefaultSessionIdleTimeout  = 2 * time.Hour
	DefaultShippingFeeCents    = 5000
	DefaultFreeShippingCents   = 150000
	DefaultLowStockThreshold   = 10
	DefaultUploadMaxBytes      = 5 << 20
	DefaultUploadDir           = "./data/uploads"
	DefaultTopProductsInterval = 15 * time.Minute
	DefaultTopProductsWindow   = 30 * 24 * time.Hour
	DefaultTopProductsSize     = 10
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks. This calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// StoreName is displayed in logs and telemetry. Defaults to "HarvestLink".
	StoreName string `yaml:"storeName,omitempty"`

	Storage   StorageConfig     `yaml:"storage"`
	Database  *DatabaseConfig   `yaml:"database,omitempty"`
	Session   SessionConfig     `yaml:"session,omitempty"`
	Authz     *AuthzConfig      `yaml:"authz,omitempty"`
	RateLimit *RateLimitConfig  `yaml:"rateLimit,omitempty"`
	CORS      *CORSConfig       `yaml:"cors,omitempty"`
	CSRF      *CSRFConfig       `yaml:"csrf,omitempty"`
	Uploads   UploadsConfig     `yaml:"uploads,omitempty"`
	Checkout  CheckoutConfig    `yaml:"checkout,omitempty"`
	Catalog   CatalogConfig     `yaml:"catalog,omitempty"`
	Jobs      JobsConfig        `yaml:"jobs,omitempty"`
	Static    *StaticConfig     `yaml:"static,omitempty"`
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// StorageConfig selects the storage backend
type StorageConfig struct {
	// Type is either "database" or "memory". Defaults to "memory" when no
	// database section is present and "database" otherwise.
	Type string `yaml:"type,omitempty"`
}

// DatabaseConfig defines database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname or IP address
	Host string `yaml:"host"`

	// Port is the database server port
	Port int `yaml:"port"`

	// User is the database username
	User string `yaml:"user"`

	// MigrationUser is the user used to apply migrations, defaults to User
	MigrationUser string `yaml:"migrationUser,omitempty"`

	// PasswordFile is the path to a file containing the database password.
	// The file should contain only the password with optional trailing whitespace.
	PasswordFile string `yaml:"passwordFile,omitempty"`

	// Database is the database name
	Database string `yaml:"database"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `yaml:"sslMode,omitempty"`

	// MaxOpenConns is the maximum number of open connections to the database
	MaxOpenConns int32 `yaml:"maxOpenConns,omitempty"`

	// MaxIdleConns is the minimum number of connections kept in the pool
	MaxIdleConns int32 `yaml:"maxIdleConns,omitempty"`

	// ConnMaxLifetime is the maximum lifetime of a connection (e.g., "1h", "30m")
	ConnMaxLifetime string `yaml:"connMaxLifetime,omitempty"`
}

// SessionConfig configures the server-side session cookie
type SessionConfig struct {
	CookieName  string `yaml:"cookieName,omitempty"`
	Lifetime    string `yaml:"lifetime,omitempty"`
	IdleTimeout string `yaml:"idleTimeout,omitempty"`
	// Secure marks the cookie as HTTPS only
	Secure bool `yaml:"secure,omitempty"`
}

// AuthzConfig configures role based authorization
type AuthzConfig struct {
	// PolicyFile optionally replaces the built-in Cedar policies
	PolicyFile string `yaml:"policyFile,omitempty"`
}

// RateLimitConfig configures the per-client request limiter
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`

	// Rules maps a scope (login, register, contact, checkout) to its limit
	Rules map[string]RateLimitRule `yaml:"rules,omitempty"`
}

// RateLimitRule is a token bucket: Requests per Per, with Burst capacity
type RateLimitRule struct {
	Requests int    `yaml:"requests"`
	Per      string `yaml:"per"`
	Burst    int    `yaml:"burst,omitempty"`
}

// CORSConfig configures cross-origin access for browser clients
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
	MaxAge         int      `yaml:"maxAge,omitempty"`
}

// CSRFConfig configures CSRF protection for state-changing requests
type CSRFConfig struct {
	Enabled bool `yaml:"enabled"`

	// AuthKeyFile holds a 32-byte key; falls back to HARVESTLINK_CSRF_KEY
	AuthKeyFile string `yaml:"authKeyFile,omitempty"`

	TrustedOrigins []string `yaml:"trustedOrigins,omitempty"`
}

// UploadsConfig configures product image uploads
type UploadsConfig struct {
	Dir      string `yaml:"dir,omitempty"`
	MaxBytes int64  `yaml:"maxBytes,omitempty"`
}

// CheckoutConfig configures order pricing
type CheckoutConfig struct {
	// ShippingFeeCents is the flat delivery fee in centavos
	ShippingFeeCents *int64 `yaml:"shippingFeeCents,omitempty"`

	// FreeShippingThresholdCents waives the fee for subtotals at or above it. 0 disables.
	FreeShippingThresholdCents *int64 `yaml:"freeShippingThresholdCents,omitempty"`
}

// CatalogConfig configures storefront catalog visibility
type CatalogConfig struct {
	Filter            *FilterConfig `yaml:"filter,omitempty"`
	LowStockThreshold int           `yaml:"lowStockThreshold,omitempty"`
}

// FilterConfig defines filtering rules for catalog products
type FilterConfig struct {
	Names *NameFilterConfig `yaml:"names,omitempty"`
	Tags  *TagFilterConfig  `yaml:"tags,omitempty"`
}

// NameFilterConfig defines name-based filtering
type NameFilterConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// TagFilterConfig defines tag-based filtering
type TagFilterConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// JobsConfig configures background jobs
type JobsConfig struct {
	TopProducts TopProductsJobConfig `yaml:"topProducts,omitempty"`
}

// TopProductsJobConfig configures the top products ranking refresh
type TopProductsJobConfig struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Interval string `yaml:"interval,omitempty"`
	Window   string `yaml:"window,omitempty"`
	Size     int    `yaml:"size,omitempty"`
}

// StaticConfig serves a directory of prebuilt storefront assets
type StaticConfig struct {
	Dir string `yaml:"dir"`
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from HARVESTLINK_DATABASE_PASSWORD environment variable
func (d *DatabaseConfig) GetPassword() (string, error) {
	if d.PasswordFile != "" {
		cleanPath := filepath.Clean(d.PasswordFile)

		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return "", fmt.Errorf("failed to read password from file %s: %w", d.PasswordFile, err)
		}

		return strings.TrimSpace(string(data)), nil
	}

	if envPassword := os.Getenv(DatabasePasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf(
		"no database password configured: set passwordFile or %s environment variable", DatabasePasswordEnv,
	)
}

// GetConnectionString builds a PostgreSQL connection string for the application user.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	return d.connectionString(d.User)
}

// GetMigrationUser returns the user that applies migrations
func (d *DatabaseConfig) GetMigrationUser() string {
	if d.MigrationUser != "" {
		return d.MigrationUser
	}
	return d.User
}

// GetMigrationConnectionString builds a connection string for the migration user.
func (d *DatabaseConfig) GetMigrationConnectionString() (string, error) {
	return d.connectionString(d.GetMigrationUser())
}

func (d *DatabaseConfig) connectionString(user string) (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String(), nil
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration and validates it
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetStoreName returns the store name, using "HarvestLink" if not specified
func (c *Config) GetStoreName() string {
	if c.StoreName == "" {
		return "HarvestLink"
	}
	return c.StoreName
}

// GetStorageType returns the storage backend type
func (c *Config) GetStorageType() string {
	if c.Storage.Type != "" {
		return c.Storage.Type
	}
	if c.Database != nil {
		return StorageTypeDatabase
	}
	return StorageTypeMemory
}

// GetCookieName returns the session cookie name
func (s SessionConfig) GetCookieName() string {
	if s.CookieName == "" {
		return DefaultSessionCookieName
	}
	return s.CookieName
}

// GetLifetime returns the absolute session lifetime
func (s SessionConfig) GetLifetime() time.Duration {
	return durationOr(s.Lifetime, DefaultSessionLifetime)
}

// GetIdleTimeout returns the session idle timeout
func (s SessionConfig) GetIdleTimeout() time.Duration {
	return durationOr(s.IdleTimeout, DefaultSessionIdleTimeout)
}

// GetDir returns the upload directory
func (u UploadsConfig) GetDir() string {
	if u.Dir == "" {
		return DefaultUploadDir
	}
	return u.Dir
}

// GetMaxBytes returns the maximum accepted upload size
func (u UploadsConfig) GetMaxBytes() int64 {
	if u.MaxBytes <= 0 {
		return DefaultUploadMaxBytes
	}
	return u.MaxBytes
}

// GetShippingFeeCents returns the flat shipping fee
func (c CheckoutConfig) GetShippingFeeCents() int64 {
	if c.ShippingFeeCents == nil {
		return DefaultShippingFeeCents
	}
	return *c.ShippingFeeCents
}

// GetFreeShippingThresholdCents returns the subtotal at which shipping is waived
func (c CheckoutConfig) GetFreeShippingThresholdCents() int64 {
	if c.FreeShippingThresholdCents == nil {
		return DefaultFreeShippingCents
	}
	return *c.FreeShippingThresholdCents
}

// GetLowStockThreshold returns the stock level reported as low on the dashboard
func (c CatalogConfig) GetLowStockThreshold() int {
	if c.LowStockThreshold <= 0 {
		return DefaultLowStockThreshold
	}
	return c.LowStockThreshold
}

// GetInterval returns how often the ranking is recomputed
func (j TopProductsJobConfig) GetInterval() time.Duration {
	return durationOr(j.Interval, DefaultTopProductsInterval)
}

// GetWindow returns how far back sales are considered
func (j TopProductsJobConfig) GetWindow() time.Duration {
	return durationOr(j.Window, DefaultTopProductsWindow)
}

// GetSize returns how many products are ranked
func (j TopProductsJobConfig) GetSize() int {
	if j.Size <= 0 {
		return DefaultTopProductsSize
	}
	return j.Size
}

// GetPeriod parses the rule window
func (r RateLimitRule) GetPeriod() time.Duration {
	return durationOr(r.Per, time.Minute)
}

func durationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	return c.validate()
}

func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	var errs []error

	switch c.GetStorageType() {
	case StorageTypeMemory:
	case StorageTypeDatabase:
		if c.Database == nil {
			errs = append(errs, fmt.Errorf("storage: database section is required for storage type %q", StorageTypeDatabase))
		} else if err := c.Database.validate(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("storage: unknown type %q", c.Storage.Type))
	}

	for _, field := range []struct {
		name, value string
	}{
		{"session.lifetime", c.Session.Lifetime},
		{"session.idleTimeout", c.Session.IdleTimeout},
		{"jobs.topProducts.interval", c.Jobs.TopProducts.Interval},
		{"jobs.topProducts.window", c.Jobs.TopProducts.Window},
	} {
		if err := validateDuration(field.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field.name, err))
		}
	}

	if fee := c.Checkout.ShippingFeeCents; fee != nil && *fee < 0 {
		errs = append(errs, fmt.Errorf("checkout.shippingFeeCents must not be negative"))
	}
	if threshold := c.Checkout.FreeShippingThresholdCents; threshold != nil && *threshold < 0 {
		errs = append(errs, fmt.Errorf("checkout.freeShippingThresholdCents must not be negative"))
	}

	if c.RateLimit != nil {
		for scope, rule := range c.RateLimit.Rules {
			if rule.Requests <= 0 {
				errs = append(errs, fmt.Errorf("rateLimit.rules.%s: requests must be positive", scope))
			}
			if err := validateDuration(rule.Per); err != nil {
				errs = append(errs, fmt.Errorf("rateLimit.rules.%s.per: %w", scope, err))
			}
		}
	}

	if c.CORS != nil && len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, fmt.Errorf("cors: at least one allowed origin is required"))
	}

	if c.Static != nil && c.Static.Dir == "" {
		errs = append(errs, fmt.Errorf("static: dir is required"))
	}

	if err := c.Telemetry.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("telemetry: %w", err))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	if d.Host == "" {
		return fmt.Errorf("host is required")
	}
	if d.Port <= 0 || d.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if d.User == "" {
		return fmt.Errorf("user is required")
	}
	if d.Database == "" {
		return fmt.Errorf("database name is required")
	}
	return validateDuration(d.ConnMaxLifetime)
}

func validateDuration(value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	if d <= 0 {
		return fmt.Errorf("duration %q must be positive", value)
	}
	return nil
}
