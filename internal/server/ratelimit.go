package server

import (
	"sync"
	"time"
)

// defaultRateLimit is requests per window per client.
const defaultRateLimit = 60

// limiter is a token bucket rate limiter keyed by client ID. Each client
// gets limit tokens per window, refilled continuously.
type limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   float64
	rate    float64 // tokens per second
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{
		buckets: make(map[string]*bucket),
		limit:   float64(limit),
		rate:    float64(limit) / window.Seconds(),
	}
}

// allow consumes a token for the client, reporting whether one was
// available.
func (l *limiter) allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{tokens: l.limit, lastRefill: now}
		l.buckets[client] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.limit {
		b.tokens = l.limit
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
