package filestore

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"sync"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// MemoryBackend is an in-process Store used by tests: a bucket-name
// keyed map of key-to-bytes maps, guarded by a single RWMutex.
type MemoryBackend struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

// NewMemoryBackend builds an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{buckets: make(map[string]map[string][]byte)}
}

func (m *MemoryBackend) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.get(bucket, key)
	if !ok {
		return nil, apierror.New(apierror.NoSuchKey, "the specified key does not exist", nil)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryBackend) GetObjectRange(ctx context.Context, bucket, key string, start, end int64) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.get(bucket, key)
	if !ok {
		return nil, apierror.New(apierror.NoSuchKey, "the specified key does not exist", nil)
	}

	if start < 0 || end >= int64(len(data)) || start > end {
		return nil, apierror.New(apierror.InvalidRange, "the requested range is not satisfiable", nil)
	}

	return io.NopCloser(bytes.NewReader(data[start : end+1])), nil
}

func (m *MemoryBackend) SaveObject(ctx context.Context, bucket, key string, body io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", apierror.New(apierror.InternalError, "failed to read object body", err)
	}

	sum := md5.Sum(data)
	etag := hex.EncodeToString(sum[:])

	m.mu.Lock()
	defer m.mu.Unlock()

	objs, ok := m.buckets[bucket]
	if !ok {
		objs = make(map[string][]byte)
		m.buckets[bucket] = objs
	}
	objs[key] = data

	return etag, nil
}

func (m *MemoryBackend) DeleteObject(ctx context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if objs, ok := m.buckets[bucket]; ok {
		delete(objs, key)
	}
	return nil
}

func (m *MemoryBackend) get(bucket, key string) ([]byte, bool) {
	objs, ok := m.buckets[bucket]
	if !ok {
		return nil, false
	}
	data, ok := objs[key]
	return data, ok
}
