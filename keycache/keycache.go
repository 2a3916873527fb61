// Package keycache holds the access-key credential map the gateway
// consults on every signed request. The map is refreshed periodically
// from the identity service and published as an immutable snapshot so
// readers never block behind a refresh.
package keycache

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/identity"
	"github.com/briarcliff-cloud/s3gateway/sigv4"
)

// Source is the subset of the identity client the cache drives. A
// narrow interface here keeps this package independent of the
// identity package's transport details.
type Source interface {
	StreamKeys(ctx context.Context, fn func(identity.Key) error) error
}

// Cache is an atomically-swapped snapshot of the identity service's
// key set. The zero value is not usable; construct with New.
type Cache struct {
	snapshot atomic.Pointer[map[string]sigv4.Credential]
	source   Source
	interval time.Duration
}

// New builds a Cache that refreshes from source every interval. The
// cache starts empty; call Refresh once before serving traffic if the
// first refresh must complete synchronously.
func New(source Source, interval time.Duration) *Cache {
	c := &Cache{source: source, interval: interval}
	empty := map[string]sigv4.Credential{}
	c.snapshot.Store(&empty)
	return c
}

// Lookup implements sigv4.CredentialSource by reading the current
// snapshot without any locking.
func (c *Cache) Lookup(accessKey string) (sigv4.Credential, bool) {
	snapshot := *c.snapshot.Load()
	cred, ok := snapshot[accessKey]
	return cred, ok
}

// Refresh pulls the full key set from the identity service and
// publishes it as the new snapshot. On failure the previous snapshot
// is left in place and the error is returned for logging by the
// caller.
func (c *Cache) Refresh(ctx context.Context) error {
	fresh := make(map[string]sigv4.Credential)

	err := c.source.StreamKeys(ctx, func(k identity.Key) error {
		fresh[k.AccessKey] = sigv4.Credential{
			AccessKey: k.AccessKey,
			SecretKey: k.SecretKey,
			UserID:    k.UserID,
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.snapshot.Store(&fresh)
	return nil
}

// Run refreshes the cache on a fixed interval until ctx is canceled. A
// refresh failure is logged and the stale snapshot is retained; it
// does not stop the loop.
func (c *Cache) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				log.WithError(err).Warn("key cache refresh failed, retaining previous snapshot")
			}
		}
	}
}

// Size reports the number of keys in the current snapshot, for
// health/metrics reporting.
func (c *Cache) Size() int {
	return len(*c.snapshot.Load())
}
