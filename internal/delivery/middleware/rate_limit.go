package middleware

import (
	"context"
	"sync"
	"time"

	"authgate/config"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	sweepInterval      = time.Minute
)

// RateLimitMiddleware throttles requests per client IP. Counters are per replica.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimitMiddleware builds the limiter from cfg.RateLimit.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rps, burst := 1.0, 5
	if cfg != nil && cfg.RateLimit != nil {
		rps, burst = cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst
	}

	return newRateLimitMiddleware(rate.Limit(rps), burst, time.Now)
}

func newRateLimitMiddleware(r rate.Limit, burst int, now func() time.Time) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
		idle:     visitorIdleTimeout,
		now:      now,
	}
}

// Allow reports whether a request from ip may proceed.
func (m *RateLimitMiddleware) Allow(ip string) bool {
	now := m.now()

	m.mu.Lock()
	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.rate, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = now
	m.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Sweep forgets visitors idle for longer than the idle timeout and returns how many remain.
func (m *RateLimitMiddleware) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for ip, v := range m.visitors {
		if now.Sub(v.lastSeen) > m.idle {
			delete(m.visitors, ip)
		}
	}

	return len(m.visitors)
}

// Run sweeps idle visitors every minute until ctx is done.
func (m *RateLimitMiddleware) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Handle rejects requests over the limit with ErrRateLimited.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.Allow(c.RealIP()) {
			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
