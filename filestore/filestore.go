// Package filestore implements the gateway's byte-storage backend: the
// narrow get/get-range/save/delete surface spec.md calls File storage.
// Streams are lazy, finite, and non-restartable.
package filestore

import (
	"context"
	"io"
)

// Store is the byte-storage capability the fullstack façade consumes.
// Implementations fold every failure into the apierror taxonomy:
// a missing key becomes NoSuchKey, anything else InternalError.
type Store interface {
	// GetObject returns the full object body as a lazily-read stream.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	// GetObjectRange returns bytes [start, end] inclusive.
	GetObjectRange(ctx context.Context, bucket, key string, start, end int64) (io.ReadCloser, error)

	// SaveObject writes size bytes from body and returns the stored
	// object's hex MD5 ETag.
	SaveObject(ctx context.Context, bucket, key string, body io.Reader, size int64) (etag string, err error)

	// DeleteObject removes the object's bytes. Deleting a missing key
	// is not an error.
	DeleteObject(ctx context.Context, bucket, key string) error
}
