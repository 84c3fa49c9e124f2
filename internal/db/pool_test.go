package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Setenv(config.DatabasePasswordEnv, "s3cr3t")

	tests := []struct {
		name         string
		cfg          *config.DatabaseConfig
		wantMax      int32
		wantMin      int32
		wantLifetime time.Duration
		wantErr      string
	}{
		{
			name:         "defaults",
			cfg:          &config.DatabaseConfig{Host: "localhost", Port: 5432, User: "harvestlink", Database: "harvestlink", SSLMode: "disable"},
			wantMax:      defaultMaxOpenConns,
			wantMin:      defaultMaxIdleConns,
			wantLifetime: defaultConnMaxLifetime,
		},
		{
			name: "configured limits",
			cfg: &config.DatabaseConfig{
				Host: "db", Port: 5433, User: "app", Database: "store", SSLMode: "disable",
				MaxOpenConns: 8, MaxIdleConns: 12, ConnMaxLifetime: "30m",
			},
			wantMax:      8,
			wantMin:      8,
			wantLifetime: 30 * time.Minute,
		},
		{
			name:    "bad lifetime",
			cfg:     &config.DatabaseConfig{Host: "db", Port: 5432, User: "app", Database: "store", ConnMaxLifetime: "forever"},
			wantErr: "invalid connection max lifetime",
		},
		{
			name:    "missing config",
			wantErr: "database configuration is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PoolConfig(tt.cfg)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, got.MaxConns)
			assert.Equal(t, tt.wantMin, got.MinConns)
			assert.Equal(t, tt.wantLifetime, got.MaxConnLifetime)
			assert.Equal(t, "s3cr3t", got.ConnConfig.Password)
			assert.Equal(t, tt.cfg.Host, got.ConnConfig.Host)
			assert.Equal(t, defaultConnectTimeout, got.ConnConfig.ConnectTimeout)
		})
	}
}
