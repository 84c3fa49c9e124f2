package storage

import (
	"context"
	"log/slog"

	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/service/inmemory"
	"github.com/harvestlink/harvestlink/internal/session"
)

// MemoryFactory creates process-local storage components. Nothing survives a
// restart; it backs development and tests.
type MemoryFactory struct{}

var _ Factory = (*MemoryFactory)(nil)

// NewMemoryFactory creates an in-memory storage factory
func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{}
}

// CreateService creates an in-memory service
func (*MemoryFactory) CreateService(_ context.Context, deps ServiceDeps) (service.Service, error) {
	slog.Warn("Using in-memory storage; data is lost on restart")

	var opts []inmemory.Option
	if deps.Visibility != nil {
		opts = append(opts, inmemory.WithVisibility(deps.Visibility))
	}
	if deps.Pricing != nil {
		opts = append(opts, inmemory.WithPricing(deps.Pricing))
	}
	if deps.Metrics != nil {
		opts = append(opts, inmemory.WithMetrics(deps.Metrics))
	}
	return inmemory.New(opts...), nil
}

// CreateSessionManager keeps sessions in process memory
func (*MemoryFactory) CreateSessionManager(cfg config.SessionConfig) *session.Manager {
	return session.New(cfg)
}

// Cleanup is a no-op
func (*MemoryFactory) Cleanup() {}
