package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/filtering"
	"github.com/harvestlink/harvestlink/internal/service"
)

func TestNewStorageFactory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      *config.Config
		wantErr  string
		wantType Factory
	}{
		{
			name:    "nil config",
			wantErr: "config cannot be nil",
		},
		{
			name:     "memory storage",
			cfg:      &config.Config{Storage: config.StorageConfig{Type: config.StorageTypeMemory}},
			wantType: &MemoryFactory{},
		},
		{
			name:    "unknown storage type",
			cfg:     &config.Config{Storage: config.StorageConfig{Type: "s3"}},
			wantErr: "unknown storage type: s3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory, err := NewStorageFactory(context.Background(), tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, factory)
			factory.Cleanup()
		})
	}
}

func TestMemoryFactory_CreateComponents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	visibility, err := filtering.NewVisibility(nil)
	require.NoError(t, err)

	factory := NewMemoryFactory()
	svc, err := factory.CreateService(ctx, ServiceDeps{Visibility: visibility})
	require.NoError(t, err)
	require.NoError(t, svc.CheckReadiness(ctx))

	_, err = svc.GetProduct(ctx, "missing-product")
	require.ErrorIs(t, err, service.ErrNotFound)

	sessions := factory.CreateSessionManager(config.SessionConfig{})
	require.NotNil(t, sessions)
	sessions.Close()
	factory.Cleanup()
}
