package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/telemetry"
)

const (
	// maxTxAttempts bounds retries of transactions that hit a serialization
	// failure, a deadlock or a concurrent primary-address conflict
	maxTxAttempts = 3

	// dashboardListSize is the number of low-stock and top products on the dashboard
	dashboardListSize = 10

	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	// primaryAddressIndex enforces one primary address per user
	primaryAddressIndex = "addresses_one_primary_idx"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// options holds configuration options for the database service
type options struct {
	pool       *pgxpool.Pool
	tracer     trace.Tracer
	visibility service.ProductVisibility
	pricing    service.PricingSource
	metrics    *telemetry.CommerceMetrics
}

// Option is a functional option for configuring the database service
type Option func(*options) error

// WithConnectionPool sets the pgx pool. The caller is responsible for
// closing the pool when it is done.
func WithConnectionPool(pool *pgxpool.Pool) Option {
	return func(o *options) error {
		if pool == nil {
			return fmt.Errorf("pgx pool is required")
		}
		o.pool = pool
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer for the database service.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// WithVisibility sets the storefront product filter
func WithVisibility(v service.ProductVisibility) Option {
	return func(o *options) error {
		o.visibility = v
		return nil
	}
}

// WithPricing sets the source of the shipping rules
func WithPricing(p service.PricingSource) Option {
	return func(o *options) error {
		o.pricing = p
		return nil
	}
}

// WithMetrics sets the business metric instruments
func WithMetrics(m *telemetry.CommerceMetrics) Option {
	return func(o *options) error {
		o.metrics = m
		return nil
	}
}

// dbService implements the Service interface using a database backend
type dbService struct {
	pool       *pgxpool.Pool
	tracer     trace.Tracer
	visibility service.ProductVisibility
	pricing    service.PricingSource
	metrics    *telemetry.CommerceMetrics
}

var _ service.Service = (*dbService)(nil)

// New creates a new database-backed storefront service with the given options
func New(opts ...Option) (service.Service, error) {
	o := &options{}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	if o.pricing == nil {
		o.pricing = service.NewLivePricing(service.Pricing{})
	}

	return &dbService{
		pool:       o.pool,
		tracer:     o.tracer,
		visibility: o.visibility,
		pricing:    o.pricing,
		metrics:    o.metrics,
	}, nil
}

// CheckReadiness checks if the service is ready to serve requests
func (s *dbService) CheckReadiness(ctx context.Context) error {
	err := s.pool.Ping(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func (s *dbService) queries() *sqlc.Queries {
	return sqlc.New(s.pool)
}

// inTx runs fn in a serializable transaction, retrying it when Postgres
// reports a serialization failure or deadlock.
func (s *dbService) inTx(ctx context.Context, fn func(q *sqlc.Queries) error) error {
	return s.retryTx(ctx, pgx.Serializable, fn)
}

// inUserTx runs fn in a read committed transaction holding a row lock on the
// user. Writes to one user's address book queue behind each other, and every
// statement after the lock sees what the previous holder committed.
func (s *dbService) inUserTx(ctx context.Context, userID uuid.UUID, fn func(q *sqlc.Queries) error) error {
	return s.retryTx(ctx, pgx.ReadCommitted, func(q *sqlc.Queries) error {
		if _, err := q.LockUser(ctx, userID); err != nil {
			return notFound(err, service.ErrUserNotFound, "lock user")
		}
		return fn(q)
	})
}

func (s *dbService) retryTx(ctx context.Context, iso pgx.TxIsoLevel, fn func(q *sqlc.Queries) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runTx(ctx, iso, fn)
		if !isRetryable(err) {
			return err
		}
		slog.DebugContext(ctx, "Retrying transaction", "attempt", attempt, "isolation", iso, "error", err)
	}
	return err
}

func (s *dbService) runTx(ctx context.Context, iso pgx.TxIsoLevel, fn func(q *sqlc.Queries) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   iso,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "Failed to roll back transaction", "error", err)
		}
	}()

	if err := fn(sqlc.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isRetryable(err error) bool {
	code, name := pgErrorCode(err)
	switch code {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	case pgUniqueViolation:
		// a concurrent primary-address write committed after our snapshot
		return name == primaryAddressIndex
	}
	return false
}

func isUniqueViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == pgUniqueViolation && name == constraint
}

// notFound maps pgx.ErrNoRows to sentinel and wraps anything else with what
func notFound(err error, sentinel error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func likePattern(s string) *string {
	if s == "" {
		return nil
	}
	escaped := likeEscaper.Replace(s)
	return &escaped
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (s *dbService) visible(p *service.Product) bool {
	return s.visibility == nil || s.visibility.Visible(p)
}

func (s *dbService) filtering() bool {
	return s.visibility != nil && s.visibility.Active()
}
