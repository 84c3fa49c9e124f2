package app

import (
	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/jobs"
	"github.com/harvestlink/harvestlink/internal/ratelimit"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/session"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// Jobs runs the top products refresh. Nil when the job is disabled.
	Jobs jobs.Coordinator

	// Service provides storefront business logic
	Service service.Service

	// Sessions stores login sessions
	Sessions *session.Manager

	// Limiter throttles login, registration, contact and checkout
	Limiter *ratelimit.Limiter

	// ConfigManager watches the configuration file
	ConfigManager config.Manager
}
