// Package app provides application lifecycle management for the storefront server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
)

const limiterSweepInterval = time.Minute

// StorefrontApp encapsulates all components needed to run the storefront server
// It provides lifecycle management and graceful shutdown capabilities
type StorefrontApp struct {
	config     *config.Config
	components *AppComponents
	httpServer *http.Server

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
	stopOnce   sync.Once
}

// Start runs the HTTP server and the background workers: the job coordinator,
// the configuration watcher and the rate limiter sweeper.
// This method blocks until the HTTP server stops or one of them fails.
func (app *StorefrontApp) Start() error {
	g, ctx := errgroup.WithContext(app.ctx)

	if app.components.Jobs != nil {
		g.Go(func() error {
			if err := app.components.Jobs.Start(ctx); err != nil {
				return fmt.Errorf("job coordinator failed: %w", err)
			}
			return nil
		})
	}

	if app.components.ConfigManager != nil {
		g.Go(func() error {
			if err := app.components.ConfigManager.WatchConfig(ctx); err != nil {
				// the server keeps running on the loaded configuration
				slog.Error("Configuration watcher stopped", "error", err)
			}
			return nil
		})
	}

	if app.components.Limiter != nil {
		g.Go(func() error {
			app.components.Limiter.Run(ctx, limiterSweepInterval)
			return nil
		})
	}

	g.Go(func() error {
		slog.Info("Server listening", "address", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	// a failed listener must release the workers
	go func() {
		<-ctx.Done()
		if app.ctx.Err() == nil {
			_ = app.httpServer.Close()
		}
	}()

	return g.Wait()
}

// Stop gracefully stops the application with the given timeout
// It stops the background jobs and then shuts down the HTTP server
func (app *StorefrontApp) Stop(timeout time.Duration) error {
	var err error
	app.stopOnce.Do(func() {
		err = app.stop(timeout)
	})
	return err
}

func (app *StorefrontApp) stop(timeout time.Duration) error {
	slog.Info("Shutting down server...")

	if app.components.Jobs != nil {
		if err := app.components.Jobs.Stop(); err != nil {
			slog.Error("Failed to stop job coordinator", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := app.httpServer.Shutdown(shutdownCtx)

	// Cancel the application context and release storage
	if app.cancelFunc != nil {
		app.cancelFunc()
	}

	if shutdownErr != nil {
		return fmt.Errorf("server forced to shutdown: %w", shutdownErr)
	}

	slog.Info("Server shutdown complete")
	return nil
}

// GetConfig returns the configuration the app was built with
func (app *StorefrontApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server (useful for testing to get the actual port)
func (app *StorefrontApp) GetHTTPServer() *http.Server {
	return app.httpServer
}

// GetService returns the storefront service (useful for seeding data in tests)
func (app *StorefrontApp) GetService() service.Service {
	return app.components.Service
}
