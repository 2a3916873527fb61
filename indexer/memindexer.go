package indexer

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// MemIndexer is an in-process Indexer used by tests and local
// development: one mutex-guarded set of maps, no persistence.
type MemIndexer struct {
	mu       sync.Mutex
	buckets  map[string]Bucket // by name
	objects  map[string][]Object
	uploads  map[string]*multipartState
	quotas   map[string]int
	defaultQ int
}

type multipartState struct {
	upload MultipartUpload
	parts  map[int]Part
}

// NewMemIndexer builds an empty MemIndexer with defaultQuota applied
// to any user with no explicit quota set.
func NewMemIndexer(defaultQuota int) *MemIndexer {
	return &MemIndexer{
		buckets:  make(map[string]Bucket),
		objects:  make(map[string][]Object),
		uploads:  make(map[string]*multipartState),
		quotas:   make(map[string]int),
		defaultQ: defaultQuota,
	}
}

// SetQuota overrides the bucket quota for a user, for test setup.
func (m *MemIndexer) SetQuota(userID string, quota int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotas[userID] = quota
}

func objKey(bucketID, key string) string {
	return bucketID + "\x00" + key
}

func (m *MemIndexer) GetBucket(name string) (Bucket, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buckets[name]
	return b, ok, nil
}

func (m *MemIndexer) ListBuckets(ownerUserID string) ([]Bucket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Bucket
	for _, b := range m.buckets {
		if b.OwnerUserID == ownerUserID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemIndexer) GetBucketQuota(ownerUserID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q, ok := m.quotas[ownerUserID]; ok {
		return q, nil
	}
	return m.defaultQ, nil
}

func (m *MemIndexer) CreateBucket(b Bucket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buckets[b.Name]; ok {
		return apierror.New(apierror.BucketAlreadyExists, "the requested bucket name is not available", nil)
	}
	m.buckets[b.Name] = b
	return nil
}

func (m *MemIndexer) DeleteBucket(bucketID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, b := range m.buckets {
		if b.ID == bucketID {
			delete(m.buckets, name)
			return nil
		}
	}
	return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
}

func (m *MemIndexer) GetObject(bucketID, key string) (Object, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	versions := m.objects[objKey(bucketID, key)]
	for _, o := range versions {
		if o.IsLatest {
			return o, true, nil
		}
	}
	return Object{}, false, nil
}

func (m *MemIndexer) ListObjects(bucketID, prefix, marker, delimiter string, limit int) ([]Object, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest []Object
	for k, versions := range m.objects {
		if !hasBucketPrefix(k, bucketID) {
			continue
		}
		for _, o := range versions {
			if o.IsLatest && !o.IsDeleteMarker && hasPrefix(o.Key, prefix) {
				latest = append(latest, o)
			}
		}
	}
	sort.Slice(latest, func(i, j int) bool { return latest[i].Key < latest[j].Key })

	start := 0
	if marker != "" {
		start = len(latest)
		for i, o := range latest {
			if o.Key > marker {
				start = i
				break
			}
		}
	}
	latest = latest[start:]

	if limit > 0 && len(latest) > limit {
		return latest[:limit], latest[limit-1].Key, nil
	}
	return latest, "", nil
}

func hasPrefix(key, prefix string) bool {
	if prefix == "" {
		return true
	}
	return len(key) >= len(prefix) && key[:len(prefix)] == prefix
}

func hasBucketPrefix(compositeKey, bucketID string) bool {
	return len(compositeKey) > len(bucketID) && compositeKey[:len(bucketID)] == bucketID && compositeKey[len(bucketID)] == 0
}

func (m *MemIndexer) ListObjectVersions(bucketID, key string) ([]Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	versions := append([]Object(nil), m.objects[objKey(bucketID, key)]...)
	sort.Slice(versions, func(i, j int) bool { return versions[i].LastModified.After(versions[j].LastModified) })
	return versions, nil
}

func (m *MemIndexer) PutObject(o Object) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := objKey(o.BucketID, o.Key)
	versions := m.objects[k]
	for i := range versions {
		versions[i].IsLatest = false
	}
	if o.VersionID == "" {
		o.VersionID = uuid.Must(uuid.NewV7()).String()
	}
	o.IsLatest = true
	m.objects[k] = append(versions, o)
	return nil
}

func (m *MemIndexer) DeleteObject(bucketID, key string) (Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := objKey(bucketID, key)
	versions := m.objects[k]
	for i := range versions {
		versions[i].IsLatest = false
	}

	marker := Object{
		BucketID:     bucketID,
		Key:          key,
		VersionID:    uuid.Must(uuid.NewV7()).String(),
		IsLatest:     true,
		IsDeleteMarker: true,
		LastModified: time.Now().UTC(),
	}
	m.objects[k] = append(versions, marker)
	return marker, nil
}

func (m *MemIndexer) DeleteObjects(bucketID string, keys []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(keys))
	for _, key := range keys {
		if _, err := m.DeleteObject(bucketID, key); err != nil {
			results = append(results, DeleteResult{Key: key, Deleted: false, Err: err})
			continue
		}
		results = append(results, DeleteResult{Key: key, Deleted: true})
	}
	return results
}

func (m *MemIndexer) CountObjects(bucketID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for k, versions := range m.objects {
		if !hasBucketPrefix(k, bucketID) {
			continue
		}
		for _, o := range versions {
			if o.IsLatest && !o.IsDeleteMarker {
				count++
			}
		}
	}
	return count, nil
}

func (m *MemIndexer) CreateMultipartUpload(bucketID, key, ownerUserID string) (MultipartUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := MultipartUpload{
		UploadID: uuid.Must(uuid.NewV7()).String(),
		BucketID: bucketID,
		Key:      key,
	}
	m.uploads[u.UploadID] = &multipartState{upload: u, parts: make(map[int]Part)}
	return u, nil
}

func (m *MemIndexer) UploadPart(uploadID string, partNumber int, size int64, etag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.uploads[uploadID]
	if !ok {
		return apierror.New(apierror.NoSuchUpload, "the specified upload does not exist", nil)
	}
	state.parts[partNumber] = Part{UploadID: uploadID, PartNumber: partNumber, Size: size, ETag: etag}
	return nil
}

func (m *MemIndexer) ListParts(uploadID string) ([]Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.uploads[uploadID]
	if !ok {
		return nil, apierror.New(apierror.NoSuchUpload, "the specified upload does not exist", nil)
	}

	out := make([]Part, 0, len(state.parts))
	for _, p := range state.parts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PartNumber < out[j].PartNumber })
	return out, nil
}

func (m *MemIndexer) ListMultipartUploads(bucketID string) ([]MultipartUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []MultipartUpload
	for _, state := range m.uploads {
		if state.upload.BucketID == bucketID {
			out = append(out, state.upload)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *MemIndexer) AbortMultipartUpload(uploadID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.uploads[uploadID]; !ok {
		return apierror.New(apierror.NoSuchUpload, "the specified upload does not exist", nil)
	}
	delete(m.uploads, uploadID)
	return nil
}

func (m *MemIndexer) CompleteMultipartUpload(uploadID string) (Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.uploads[uploadID]
	if !ok {
		return Object{}, apierror.New(apierror.NoSuchUpload, "the specified upload does not exist", nil)
	}
	delete(m.uploads, uploadID)

	return Object{BucketID: state.upload.BucketID, Key: state.upload.Key}, nil
}
