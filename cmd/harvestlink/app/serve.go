package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harvestlink/harvestlink/internal/app"
	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/telemetry"
)

const defaultGracefulTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront server",
		Long: `Start the storefront API server.

The server requires a configuration file (--config) that specifies:
- Storage backend (database or memory) and database connection
- Sessions, CSRF, CORS and rate limits
- Checkout pricing, catalog filters and background jobs

Pricing and catalog filters are reloaded when the file changes.
See examples/ directory for sample configurations.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	if err := cmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
	return cmd
}

// serveSettings merges flags with HARVESTLINK_ADDRESS and HARVESTLINK_CONFIG
func serveSettings(cmd *cobra.Command) (address, configPath string, err error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlag("address", cmd.Flags().Lookup("address")); err != nil {
		return "", "", fmt.Errorf("failed to bind address flag: %w", err)
	}
	if err := v.BindPFlag("config", cmd.Flags().Lookup("config")); err != nil {
		return "", "", fmt.Errorf("failed to bind config flag: %w", err)
	}
	return v.GetString("address"), v.GetString("config"), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	address, configPath, err := serveSettings(cmd)
	if err != nil {
		return err
	}

	// Telemetry comes from the initial file; changing it needs a restart
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Info("Starting HarvestLink",
		"store", cfg.GetStoreName(),
		"storage", cfg.GetStorageType(),
		"address", address)

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down telemetry", "error", err)
		}
	}()

	opts := []app.StorefrontAppOptions{
		app.WithConfigFile(configPath),
		app.WithAddress(address),
	}
	if cfg.Telemetry != nil && cfg.Telemetry.Enabled {
		opts = append(opts,
			app.WithMeterProvider(tel.MeterProvider()),
			app.WithTracerProvider(tel.TracerProvider()),
		)
	}
	if handler := tel.MetricsHandler(); handler != nil {
		opts = append(opts, app.WithMetricsHandler(handler))
	}

	storefront, err := app.NewStorefrontApp(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to build storefront: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- storefront.Start()
	}()

	select {
	case err := <-errCh:
		_ = storefront.Stop(defaultGracefulTimeout)
		return err
	case <-ctx.Done():
	}

	if err := storefront.Stop(defaultGracefulTimeout); err != nil {
		return err
	}
	return <-errCh
}
