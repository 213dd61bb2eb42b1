package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter implements per-client fixed window rate limiting keyed by the
// remote host.
type RateLimiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu          sync.Mutex
	counters    map[string]*window
	lastCleanup time.Time
}

type window struct {
	count    int
	resetAt  time.Time
	lastSeen time.Time
}

const (
	cleanupInterval    = 5 * time.Minute
	expiredWindowGrace = 10 * time.Minute
	staleEntryTTL      = 24 * time.Hour
)

// NewRateLimiter creates an in-memory limiter allowing limit requests per
// period for each client.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return newRateLimiter(limit, period, time.Now)
}

func newRateLimiter(limit int, period time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		period:      period,
		now:         now,
		counters:    make(map[string]*window),
		lastCleanup: now(),
	}
}

// Allow checks if the client is within its rate limit.
// Returns (allowed, remaining, resetAt).
func (rl *RateLimiter) Allow(client string) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	defer rl.cleanupLocked(now)

	w, exists := rl.counters[client]
	if !exists || !now.Before(w.resetAt) {
		resetAt := now.Add(rl.period)
		rl.counters[client] = &window{count: 1, resetAt: resetAt, lastSeen: now}
		return true, rl.limit - 1, resetAt
	}

	w.lastSeen = now
	if w.count >= rl.limit {
		return false, 0, w.resetAt
	}

	w.count++
	return true, rl.limit - w.count, w.resetAt
}

// RateLimitMiddleware returns middleware that enforces per-client rate limits.
// A nil limiter disables limiting.
func RateLimitMiddleware(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining, resetAt := rl.Allow(clientKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter(resetAt.Sub(rl.now()))))
				respondError(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfter(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

func (rl *RateLimiter) cleanupLocked(now time.Time) {
	if now.Sub(rl.lastCleanup) < cleanupInterval {
		return
	}

	for key, w := range rl.counters {
		if now.Sub(w.lastSeen) > staleEntryTTL || now.After(w.resetAt.Add(expiredWindowGrace)) {
			delete(rl.counters, key)
		}
	}

	rl.lastCleanup = now
}
