package notification

import (
	"sync"
	"time"
)

// TokenBucketRateLimiter implements token bucket rate limiting
type TokenBucketRateLimiter struct {
	capacity   int
	tokens     int
	refillRate time.Duration
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

// NewTokenBucketRateLimiter creates a limiter that holds up to capacity
// tokens and regains one every refillRate.
func NewTokenBucketRateLimiter(capacity int, refillRate time.Duration) *TokenBucketRateLimiter {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate time.Duration, now func() time.Time) *TokenBucketRateLimiter {
	return &TokenBucketRateLimiter{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

// Allow checks if a request is allowed under the rate limit
func (tb *TokenBucketRateLimiter) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	if tb.refillRate > 0 {
		now := tb.now()
		if add := int(now.Sub(tb.lastRefill) / tb.refillRate); add > 0 {
			tb.tokens = min(tb.capacity, tb.tokens+add)
			tb.lastRefill = tb.lastRefill.Add(time.Duration(add) * tb.refillRate)
		}
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}
