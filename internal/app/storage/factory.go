// Package storage provides factory functions for creating storage-dependent components.
// It implements the Abstract Factory pattern so the storefront service and the
// session store always share one backend.
package storage

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/session"
	"github.com/harvestlink/harvestlink/internal/telemetry"
)

// ServiceDeps are the storage-independent collaborators of the service
type ServiceDeps struct {
	Visibility service.ProductVisibility
	Pricing    service.PricingSource
	Metrics    *telemetry.CommerceMetrics
	Tracer     trace.TracerProvider
}

// Factory creates storage-dependent components as a family.
//
// The factory encapsulates the creation of:
// - Service: serves storefront and back office requests
// - session.Manager: keeps login sessions next to the rest of the data
//
// It also manages the lifecycle of storage resources (e.g., database connections).
type Factory interface {
	// CreateService creates the storefront service
	CreateService(ctx context.Context, deps ServiceDeps) (service.Service, error)

	// CreateSessionManager creates a session manager whose store matches the factory
	CreateSessionManager(cfg config.SessionConfig) *session.Manager

	// Cleanup releases any resources held by this factory.
	// For database factories, this closes the connection pool.
	Cleanup()
}

// NewStorageFactory creates a storage factory based on the configured storage type.
func NewStorageFactory(ctx context.Context, cfg *config.Config) (Factory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch cfg.GetStorageType() {
	case config.StorageTypeDatabase:
		return NewDatabaseFactory(ctx, cfg)
	case config.StorageTypeMemory:
		return NewMemoryFactory(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.GetStorageType())
	}
}
