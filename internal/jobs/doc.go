// Package jobs runs the storefront's periodic background work.
//
// The coordinator owns a single loop driven by a time.Ticker. It runs every
// job once at startup and then on each tick, re-applying a random jitter to
// the interval so that several replicas sharing one database do not recompute
// at the same instant.
//
// # Jobs
//
//   - top-products: rebuilds the best-seller ranking from non-cancelled orders
//     inside the configured window (see AdminService.RefreshTopProducts)
//
// # Lifecycle
//
//	coord := jobs.New(svc, cfg.Jobs, jobs.WithJobMetrics(m))
//	go coord.Start(ctx)
//	...
//	coord.Stop()
//
// Start blocks until its context is cancelled or Stop is called. Stop waits
// for the loop to exit and is safe to call before Start.
//
// A failed run is logged and recorded in the job metrics; the loop keeps
// going and tries again on the next tick.
package jobs
