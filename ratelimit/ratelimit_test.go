package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLocalAllowsUpToBurst(t *testing.T) {
	l := NewLocal()
	for i := 0; i < defaultBurst; i++ {
		if !l.Allow("203.0.113.1") {
			t.Fatalf("expected request %d within burst to be allowed", i)
		}
	}
	if l.Allow("203.0.113.1") {
		t.Fatal("expected request beyond burst to be denied")
	}
}

func TestLocalTracksIPsIndependently(t *testing.T) {
	l := NewLocal()
	for i := 0; i < defaultBurst; i++ {
		l.Allow("203.0.113.1")
	}
	if !l.Allow("203.0.113.2") {
		t.Fatal("expected a fresh IP to have its own bucket")
	}
}

func TestSweepDropsStaleBuckets(t *testing.T) {
	l := NewLocal()
	l.Allow("203.0.113.1")
	if _, ok := l.buckets["203.0.113.1"]; !ok {
		t.Fatal("expected bucket to be created")
	}

	l.Sweep(0)
	if _, ok := l.buckets["203.0.113.1"]; ok {
		t.Error("expected stale bucket to be swept")
	}
}

type fakeCounter struct {
	counts map[string]int64
	err    error
}

func (f *fakeCounter) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[key]++
	return f.counts[key], nil
}

func TestSharedAllowsWithinLimit(t *testing.T) {
	s := NewShared(&fakeCounter{}, 3, time.Minute)
	for i := 0; i < 3; i++ {
		allowed, err := s.Allow("203.0.113.1")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !allowed {
			t.Fatalf("expected request %d to be allowed", i)
		}
	}
}

func TestSharedDeniesOverLimit(t *testing.T) {
	s := NewShared(&fakeCounter{}, 1, time.Minute)
	s.Allow("203.0.113.1")
	allowed, err := s.Allow("203.0.113.1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if allowed {
		t.Error("expected second request to exceed limit")
	}
}

func TestSharedPropagatesCounterError(t *testing.T) {
	s := NewShared(&fakeCounter{err: errors.New("connection refused")}, 10, time.Minute)
	_, err := s.Allow("203.0.113.1")
	if err == nil {
		t.Fatal("expected counter error to propagate")
	}
}
