package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Counter is the subset of a distributed cache client the shared
// limiter needs: an atomic increment-and-expire primitive, the shape
// Redis's INCR/EXPIRE pair provides.
type Counter interface {
	// IncrementWindow increments key's counter, setting it to expire
	// after window on first creation, and returns the counter's value
	// after the increment.
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Shared is a distributed leaky-bucket-by-fixed-window counter,
// consulted alongside the local bucket. It satisfies
// filter.SharedLimiter: a Counter failure (e.g. the cache is
// unreachable) is returned as an error so the caller fails open,
// distinct from a clean over-limit denial.
type Shared struct {
	counter Counter
	limit   int64
	window  time.Duration
}

// NewShared builds a Shared limiter allowing limit requests per window
// per client IP.
func NewShared(counter Counter, limit int64, window time.Duration) *Shared {
	return &Shared{counter: counter, limit: limit, window: window}
}

// Allow increments clientIP's window counter and reports whether it is
// still within limit. A Counter error is propagated so the caller can
// fail open rather than block traffic on a cache outage.
func (s *Shared) Allow(clientIP string) (bool, error) {
	count, err := s.counter.IncrementWindow(context.Background(), fmt.Sprintf("ratelimit:%s", clientIP), s.window)
	if err != nil {
		return false, err
	}
	return count <= s.limit, nil
}
