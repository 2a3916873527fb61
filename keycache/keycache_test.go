package keycache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/briarcliff-cloud/s3gateway/identity"
)

type fakeSource struct {
	keys []identity.Key
	err  error
}

func (f fakeSource) StreamKeys(ctx context.Context, fn func(identity.Key) error) error {
	if f.err != nil {
		return f.err
	}
	for _, k := range f.keys {
		if err := fn(k); err != nil {
			return err
		}
	}
	return nil
}

func TestLookupMissOnEmptyCache(t *testing.T) {
	c := New(fakeSource{}, time.Minute)
	if _, ok := c.Lookup("AKIDEXAMPLE"); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestRefreshPublishesSnapshot(t *testing.T) {
	src := fakeSource{keys: []identity.Key{
		{AccessKey: "AKIDEXAMPLE", SecretKey: "wJalrXUtnFEMI", UserID: "u-1"},
	}}
	c := New(src, time.Minute)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	cred, ok := c.Lookup("AKIDEXAMPLE")
	if !ok {
		t.Fatal("expected hit after refresh")
	}
	if cred.SecretKey != "wJalrXUtnFEMI" || cred.UserID != "u-1" {
		t.Errorf("unexpected credential: %+v", cred)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}
}

func TestRefreshFailureRetainsPreviousSnapshot(t *testing.T) {
	good := fakeSource{keys: []identity.Key{
		{AccessKey: "AKIDEXAMPLE", SecretKey: "wJalrXUtnFEMI", UserID: "u-1"},
	}}
	c := New(good, time.Minute)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	c.source = fakeSource{err: errors.New("identity service unreachable")}
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	cred, ok := c.Lookup("AKIDEXAMPLE")
	if !ok {
		t.Fatal("expected stale snapshot to remain after failed refresh")
	}
	if cred.SecretKey != "wJalrXUtnFEMI" {
		t.Errorf("unexpected credential after failed refresh: %+v", cred)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	c := New(fakeSource{}, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after context cancellation")
	}
}
