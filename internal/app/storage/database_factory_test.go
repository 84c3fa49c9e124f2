package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/database"
	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
)

func TestNewDatabaseFactory(t *testing.T) {
	pool, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)
	t.Setenv(config.DatabasePasswordEnv, "testpass")

	dbCfg := func() *config.DatabaseConfig {
		return &config.DatabaseConfig{
			Host:     pool.Config().ConnConfig.Host,
			Port:     int(pool.Config().ConnConfig.Port),
			User:     pool.Config().ConnConfig.User,
			Database: pool.Config().ConnConfig.Database,
			SSLMode:  "disable",
		}
	}

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name: "valid config with database settings",
			cfg:  &config.Config{StoreName: "test-store", Database: dbCfg()},
		},
		{
			name: "valid config with connection pool settings",
			cfg: func() *config.Config {
				c := dbCfg()
				c.MaxOpenConns = 10
				c.MaxIdleConns = 5
				c.ConnMaxLifetime = "1h"
				return &config.Config{StoreName: "test-store", Database: c}
			}(),
		},
		{
			name:    "nil config returns error",
			wantErr: "config cannot be nil",
		},
		{
			name:    "config with nil database field returns error",
			cfg:     &config.Config{StoreName: "test-store"},
			wantErr: "database configuration is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := NewDatabaseFactory(context.Background(), tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, factory)
				return
			}
			require.NoError(t, err)
			t.Cleanup(factory.Cleanup)
			assert.NotNil(t, factory.Pool())
		})
	}
}

func TestDatabaseFactory_CreateComponents(t *testing.T) {
	pool, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)

	factory := NewDatabaseFactoryFromPool(pool)
	// the pool belongs to the test helper
	t.Cleanup(factory.Cleanup)

	ctx := context.Background()
	svc, err := factory.CreateService(ctx, ServiceDeps{})
	require.NoError(t, err)
	require.NoError(t, svc.CheckReadiness(ctx))

	_, err = svc.GetProduct(ctx, "missing-product")
	require.ErrorIs(t, err, service.ErrNotFound)

	sessions := factory.CreateSessionManager(config.SessionConfig{})
	require.NotNil(t, sessions)
	t.Cleanup(sessions.Close)
}
