package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/db"
	"github.com/harvestlink/harvestlink/internal/service"
	database "github.com/harvestlink/harvestlink/internal/service/db"
	"github.com/harvestlink/harvestlink/internal/session"
)

// DatabaseFactory creates database-backed storage components.
// All components created by this factory use PostgreSQL for persistence.
type DatabaseFactory struct {
	pool *pgxpool.Pool
	// owned is true when the factory opened the pool and must close it
	owned bool
}

var _ Factory = (*DatabaseFactory)(nil)

// NewDatabaseFactory creates a new database-backed storage factory.
// It establishes a connection pool to the configured PostgreSQL database.
func NewDatabaseFactory(ctx context.Context, cfg *config.Config) (*DatabaseFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.Database == nil {
		return nil, fmt.Errorf("database configuration is required for database storage type")
	}

	slog.Info("Creating database-backed storage factory")

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &DatabaseFactory{pool: pool, owned: true}, nil
}

// NewDatabaseFactoryFromPool wraps an existing pool. Cleanup leaves the pool open.
func NewDatabaseFactoryFromPool(pool *pgxpool.Pool) *DatabaseFactory {
	return &DatabaseFactory{pool: pool}
}

// CreateService creates a database-backed service
func (d *DatabaseFactory) CreateService(_ context.Context, deps ServiceDeps) (service.Service, error) {
	slog.Debug("Creating database-backed service")

	opts := []database.Option{
		database.WithConnectionPool(d.pool),
	}
	if deps.Visibility != nil {
		opts = append(opts, database.WithVisibility(deps.Visibility))
	}
	if deps.Pricing != nil {
		opts = append(opts, database.WithPricing(deps.Pricing))
	}
	if deps.Metrics != nil {
		opts = append(opts, database.WithMetrics(deps.Metrics))
	}
	if deps.Tracer != nil {
		opts = append(opts, database.WithTracer(deps.Tracer.Tracer(database.ServiceTracerName)))
		slog.Debug("Database service tracing enabled")
	}

	return database.New(opts...)
}

// CreateSessionManager keeps sessions in the sessions table
func (d *DatabaseFactory) CreateSessionManager(cfg config.SessionConfig) *session.Manager {
	return session.New(cfg, session.WithPostgresStore(d.pool))
}

// Pool returns the connection pool
func (d *DatabaseFactory) Pool() *pgxpool.Pool {
	return d.pool
}

// Cleanup releases resources held by the database factory.
func (d *DatabaseFactory) Cleanup() {
	if d.owned && d.pool != nil {
		slog.Info("Closing database connection pool")
		d.pool.Close()
	}
}
