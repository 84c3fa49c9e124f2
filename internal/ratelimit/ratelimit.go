// Package ratelimit provides per-client token bucket limiting for abuse-prone endpoints.
package ratelimit

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/time/rate"

	"github.com/harvestlink/harvestlink/internal/config"
)

// Scopes with their own buckets
const (
	ScopeLogin    = "login"
	ScopeRegister = "register"
	ScopeContact  = "contact"
	ScopeCheckout = "checkout"
)

// DefaultIdleTTL is how long an untouched bucket is kept
const DefaultIdleTTL = 10 * time.Minute

var defaultRules = map[string]config.RateLimitRule{
	ScopeLogin:    {Requests: 5, Per: "1m", Burst: 5},
	ScopeRegister: {Requests: 3, Per: "1m", Burst: 3},
	ScopeContact:  {Requests: 5, Per: "10m", Burst: 2},
	ScopeCheckout: {Requests: 10, Per: "1m", Burst: 5},
}

type rule struct {
	limit rate.Limit
	burst int
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// Limiter tracks one token bucket per scope and client
type Limiter struct {
	enabled bool
	rules   map[string]rule
	buckets *xsync.MapOf[string, *bucket]
	now     func() time.Time
}

// New builds a limiter from configuration. A nil or disabled config yields a
// limiter that allows everything.
func New(cfg *config.RateLimitConfig) *Limiter {
	l := &Limiter{
		rules:   make(map[string]rule, len(defaultRules)),
		buckets: xsync.NewMapOf[string, *bucket](),
		now:     time.Now,
	}
	if cfg == nil || !cfg.Enabled {
		return l
	}
	l.enabled = true

	for scope, r := range defaultRules {
		l.rules[scope] = compile(r)
	}
	for scope, r := range cfg.Rules {
		l.rules[scope] = compile(r)
	}
	return l
}

func compile(r config.RateLimitRule) rule {
	burst := r.Burst
	if burst <= 0 {
		burst = r.Requests
	}
	return rule{
		limit: rate.Limit(float64(r.Requests) / r.GetPeriod().Seconds()),
		burst: burst,
	}
}

// Enabled reports whether requests are limited at all
func (l *Limiter) Enabled() bool {
	return l.enabled
}

// Allow takes a token for client in scope. When denied it returns how long
// until a token is available.
func (l *Limiter) Allow(scope, client string) (bool, time.Duration) {
	if !l.enabled {
		return true, 0
	}
	r, ok := l.rules[scope]
	if !ok {
		return true, 0
	}

	now := l.now()
	b, _ := l.buckets.LoadOrCompute(scope+"|"+client, func() *bucket {
		return &bucket{limiter: rate.NewLimiter(r.limit, r.burst)}
	})
	b.lastSeen.Store(now.UnixNano())

	res := b.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Duration(math.MaxInt64)
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Sweep drops buckets idle for longer than ttl and returns how many were removed
func (l *Limiter) Sweep(ttl time.Duration) int {
	cutoff := l.now().Add(-ttl).UnixNano()
	removed := 0
	l.buckets.Range(func(key string, b *bucket) bool {
		if b.lastSeen.Load() < cutoff {
			l.buckets.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps idle buckets every interval until ctx is cancelled
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	if !l.enabled {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Sweep(DefaultIdleTTL); n > 0 {
				slog.Debug("Swept idle rate limit buckets", "count", n)
			}
		}
	}
}

// Middleware limits requests in scope by client IP. It expects chi's
// RealIP middleware to have set RemoteAddr.
func (l *Limiter) Middleware(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !l.enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := ClientIP(r)
			ok, wait := l.Allow(scope, client)
			if !ok {
				slog.WarnContext(r.Context(), "Rate limit exceeded", "scope", scope, "client", client, "path", r.URL.Path)
				writeLimited(w, wait)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the request's client address without the port
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeLimited(w http.ResponseWriter, wait time.Duration) {
	seconds := int64(math.Ceil(wait.Seconds()))
	if seconds < 1 || wait == time.Duration(math.MaxInt64) {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)

	resp := struct {
		Error string `json:"error"`
	}{
		Error: "too many requests, try again later",
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}
