package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	assert.Equal(t, DefaultServiceName, cfg.GetServiceName())
	assert.Equal(t, "unknown", cfg.GetServiceVersion())
	assert.Equal(t, DefaultEndpoint, cfg.GetEndpoint())
	assert.Equal(t, DefaultSampling, (&TracingConfig{}).GetSampling())

	cfg = &Config{ServiceName: "shop", ServiceVersion: "1.2.3", Endpoint: "otel:4318"}
	assert.Equal(t, "shop", cfg.GetServiceName())
	assert.Equal(t, "1.2.3", cfg.GetServiceVersion())
	assert.Equal(t, "otel:4318", cfg.GetEndpoint())
}

func TestMetricsConfig_PushesOTLP(t *testing.T) {
	t.Parallel()

	off := false
	on := true

	assert.True(t, (&MetricsConfig{}).PushesOTLP())
	assert.False(t, (&MetricsConfig{Prometheus: true}).PushesOTLP())
	assert.True(t, (&MetricsConfig{Prometheus: true, OTLP: &on}).PushesOTLP())
	assert.False(t, (&MetricsConfig{OTLP: &off}).PushesOTLP())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	off := false

	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "nil config", config: nil},
		{name: "disabled config is not validated", config: &Config{Tracing: &TracingConfig{Enabled: true, Sampling: 5}}},
		{
			name: "valid",
			config: &Config{
				Enabled: true,
				Tracing: &TracingConfig{Enabled: true, Sampling: 0.5},
				Metrics: &MetricsConfig{Enabled: true, Prometheus: true},
			},
		},
		{
			name:    "sampling above one",
			config:  &Config{Enabled: true, Tracing: &TracingConfig{Enabled: true, Sampling: 1.5}},
			wantErr: "tracing: sampling must be between 0.0 and 1.0",
		},
		{
			name:    "negative sampling",
			config:  &Config{Enabled: true, Tracing: &TracingConfig{Enabled: true, Sampling: -0.1}},
			wantErr: "sampling must be between",
		},
		{
			name:    "metrics without any reader",
			config:  &Config{Enabled: true, Metrics: &MetricsConfig{Enabled: true, OTLP: &off}},
			wantErr: "metrics: at least one of otlp or prometheus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
