// Package ratelimit implements the gateway's per-client-IP cooperative
// token bucket and an optional shared/distributed counter consulted
// alongside it.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRate  = 10 // requests per second sustained
	defaultBurst = 10
)

// Local is an in-process, authoritative per-IP token bucket. It
// satisfies filter.Limiter.
type Local struct {
	mu       sync.Mutex
	buckets  map[string]*rate.Limiter
	r        rate.Limit
	burst    int
	lastSeen map[string]time.Time
}

// NewLocal builds a Local limiter with the gateway's default rate and
// burst (10 requests/second, burst 10).
func NewLocal() *Local {
	return &Local{
		buckets:  make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		r:        rate.Limit(defaultRate),
		burst:    defaultBurst,
	}
}

// Allow reports whether clientIP's bucket has a token available,
// creating a fresh bucket on first sight of that IP.
func (l *Local) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientIP]
	if !ok {
		b = rate.NewLimiter(l.r, l.burst)
		l.buckets[clientIP] = b
	}
	l.lastSeen[clientIP] = time.Now()

	return b.Allow()
}

// Sweep drops buckets not seen in longer than maxAge, bounding memory
// growth from one-off clients. Intended to run on its own periodic
// schedule alongside the key cache refresh loop.
func (l *Local) Sweep(maxAge time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	for ip, seen := range l.lastSeen {
		if seen.Before(cutoff) {
			delete(l.lastSeen, ip)
			delete(l.buckets, ip)
		}
	}
}

// Run calls Sweep on a fixed interval until ctx is canceled.
func (l *Local) Run(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep(maxAge)
		}
	}
}
