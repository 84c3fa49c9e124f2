package jobs

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/telemetry"
)

const (
	// TopProductsJob is the job name used in logs and metrics
	TopProductsJob = "top-products"

	// jitterFraction is the maximum offset applied to the interval, as a fraction of it
	jitterFraction = 0.1
)

// TopProductsRefresher rebuilds the best-seller ranking
type TopProductsRefresher interface {
	RefreshTopProducts(ctx context.Context, window time.Duration, size int) ([]service.TopProduct, error)
}

// Coordinator manages background job scheduling and execution
type Coordinator interface {
	// Start runs the job loop. Blocks until the context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the loop and waits for the running job to finish
	Stop() error
}

type defaultCoordinator struct {
	refresher TopProductsRefresher
	interval  time.Duration
	window    time.Duration
	size      int
	metrics   *telemetry.JobMetrics

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	done       chan struct{}
}

// Option is a function that configures the coordinator
type Option func(*defaultCoordinator)

// WithJobMetrics sets the metrics recorded for each run
func WithJobMetrics(metrics *telemetry.JobMetrics) Option {
	return func(c *defaultCoordinator) {
		c.metrics = metrics
	}
}

// WithInterval overrides the configured interval
func WithInterval(interval time.Duration) Option {
	return func(c *defaultCoordinator) {
		c.interval = interval
	}
}

// New creates a coordinator for the top products job
func New(refresher TopProductsRefresher, cfg config.JobsConfig, opts ...Option) Coordinator {
	c := &defaultCoordinator{
		refresher: refresher,
		interval:  cfg.TopProducts.GetInterval(),
		window:    cfg.TopProducts.GetWindow(),
		size:      cfg.TopProducts.GetSize(),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// jitter returns interval shifted by a random offset of up to ±10%
func jitter(interval time.Duration) time.Duration {
	maxOffset := int64(float64(interval) * jitterFraction)
	if maxOffset <= 0 {
		return interval
	}
	//nolint:gosec // G404: Non-cryptographic randomness is sufficient for scheduling jitter
	offset := time.Duration(rand.Int64N(2*maxOffset)) - time.Duration(maxOffset)
	return interval + offset
}

// Start implements Coordinator.Start
func (c *defaultCoordinator) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancelFunc = cancel
	c.mu.Unlock()
	defer func() {
		cancel()
		close(c.done)
		slog.Info("Background jobs coordinator shut down")
	}()

	interval := jitter(c.interval)
	slog.Info("Starting background jobs coordinator",
		"job", TopProductsJob,
		"base_interval", c.interval,
		"actual_interval", interval,
		"window", c.window,
		"size", c.size)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.runTopProducts(loopCtx)

	for {
		select {
		case <-ticker.C:
			c.runTopProducts(loopCtx)
			ticker.Reset(jitter(c.interval))
		case <-loopCtx.Done():
			slog.Info("Background jobs coordinator stopping")
			return nil
		}
	}
}

// Stop implements Coordinator.Stop
func (c *defaultCoordinator) Stop() error {
	c.mu.Lock()
	cancel := c.cancelFunc
	c.mu.Unlock()

	if cancel != nil {
		slog.Info("Stopping background jobs coordinator")
		cancel()
		<-c.done
	}
	return nil
}

func (c *defaultCoordinator) runTopProducts(ctx context.Context) {
	start := time.Now()
	ranked, err := c.refresher.RefreshTopProducts(ctx, c.window, c.size)
	duration := time.Since(start)

	// Runs interrupted by shutdown are not recorded.
	if ctx.Err() != nil {
		return
	}

	c.metrics.RecordRun(ctx, TopProductsJob, duration, err == nil)
	if err != nil {
		slog.Error("Top products refresh failed",
			"error", err,
			"duration", duration)
		return
	}

	slog.Info("Top products refreshed",
		"ranked", len(ranked),
		"duration", duration)
}
