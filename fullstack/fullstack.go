// Package fullstack composes the indexer and filestore behind the
// cross-store invariants spec.md calls the Fullstack façade: ownership
// and quota checks on CreateBucket, emptiness on DeleteBucket, the
// 100-continue/size/ETag/version dance on PutObject, range handling on
// GetObject, and the multipart and copy lifecycles.
package fullstack

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/filestore"
	"github.com/briarcliff-cloud/s3gateway/indexer"
)

const (
	maxObjectSize = 5 * 1024 * 1024 * 1024 // 5 GiB
	minPartSize   = 5 * 1024 * 1024        // 5 MiB
)

// Facade is the fullstack backend: an Indexer for metadata and a
// filestore.Store for bytes.
type Facade struct {
	Index indexer.Indexer
	Store filestore.Store
}

// New builds a Facade from an indexer and a byte store.
func New(index indexer.Indexer, store filestore.Store) *Facade {
	return &Facade{Index: index, Store: store}
}

// CreateBucket enforces ownership/quota precedence then inserts into
// the indexer before the storage backend; a storage failure rolls the
// indexer row back.
func (f *Facade) CreateBucket(ctx context.Context, name, ownerUserID string) (indexer.Bucket, error) {
	existing, ok, err := f.Index.GetBucket(name)
	if err != nil {
		return indexer.Bucket{}, apierror.ErrCode("failed to check existing bucket "+name, err)
	}
	if ok {
		if existing.OwnerUserID == ownerUserID {
			return indexer.Bucket{}, apierror.New(apierror.BucketAlreadyOwnedByYou, "your previous request to create the named bucket succeeded and you already own it", nil)
		}
		return indexer.Bucket{}, apierror.New(apierror.BucketAlreadyExists, "the requested bucket name is not available", nil)
	}

	quota, err := f.Index.GetBucketQuota(ownerUserID)
	if err != nil {
		return indexer.Bucket{}, apierror.ErrCode("failed to get bucket quota for "+ownerUserID, err)
	}
	owned, err := f.Index.ListBuckets(ownerUserID)
	if err != nil {
		return indexer.Bucket{}, apierror.ErrCode("failed to list buckets for "+ownerUserID, err)
	}
	if len(owned) >= quota {
		return indexer.Bucket{}, apierror.New(apierror.TooManyBuckets, "you have attempted to create more buckets than allowed", nil)
	}

	b := indexer.Bucket{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        name,
		OwnerUserID: ownerUserID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := f.Index.CreateBucket(b); err != nil {
		return indexer.Bucket{}, apierror.ErrCode("failed to create bucket "+name, err)
	}

	if creator, ok := f.Store.(BucketCreator); ok {
		if err := creator.CreateBucket(ctx, name); err != nil {
			log.Errorf("storage backend failed to create bucket %s, rolling back indexer row: %s", name, err)
			if rbErr := f.Index.DeleteBucket(b.ID); rbErr != nil {
				log.Errorf("failed to roll back indexer row for bucket %s: %s", name, rbErr)
			}
			return indexer.Bucket{}, apierror.ErrCode("failed to create bucket "+name, err)
		}
	}

	return b, nil
}

// DeleteBucket requires the object count be zero; storage-side
// failure after the indexer delete is logged, not surfaced (orphan
// bytes are acceptable per spec).
func (f *Facade) DeleteBucket(ctx context.Context, name string) error {
	b, ok, err := f.Index.GetBucket(name)
	if err != nil {
		return apierror.ErrCode("failed to get bucket "+name, err)
	}
	if !ok {
		return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	count, err := f.Index.CountObjects(b.ID)
	if err != nil {
		return apierror.ErrCode("failed to count objects in bucket "+name, err)
	}
	if count > 0 {
		return apierror.New(apierror.BucketNotEmpty, "the bucket you tried to delete is not empty", nil)
	}

	if err := f.Index.DeleteBucket(b.ID); err != nil {
		return apierror.ErrCode("failed to delete bucket "+name, err)
	}

	if deleter, ok := f.Store.(BucketDeleter); ok {
		if err := deleter.DeleteBucket(ctx, name); err != nil {
			log.Errorf("storage backend failed to delete bucket %s, leaving orphaned bytes: %s", name, err)
		}
	}

	return nil
}

// BucketCreator is implemented by storage backends that track buckets
// as first-class objects (the real S3-compatible backend); the
// in-memory test backend does not need it.
type BucketCreator interface {
	CreateBucket(ctx context.Context, name string) error
}

// BucketDeleter mirrors BucketCreator for deletion.
type BucketDeleter interface {
	DeleteBucket(ctx context.Context, name string) error
}

// PutObjectRequest carries everything PutObject needs from the caller,
// already validated by the caller for Content-Length presence/bounds.
type PutObjectRequest struct {
	BucketName  string
	Key         string
	OwnerUserID string
	ContentType string
	Size        int64
	Body        io.Reader
}

// PutObject streams the body to storage, computes the MD5 ETag, and
// records a new latest version.
func (f *Facade) PutObject(ctx context.Context, req PutObjectRequest) (indexer.Object, error) {
	if req.Size < 0 || req.Size > maxObjectSize {
		return indexer.Object{}, apierror.New(apierror.EntityTooLarge, "your proposed upload exceeds the maximum allowed size", nil)
	}

	b, ok, err := f.Index.GetBucket(req.BucketName)
	if err != nil {
		return indexer.Object{}, apierror.ErrCode("failed to get bucket "+req.BucketName, err)
	}
	if !ok {
		return indexer.Object{}, apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	hasher := md5.New()
	tee := io.TeeReader(req.Body, hasher)

	if _, err := f.Store.SaveObject(ctx, req.BucketName, req.Key, tee, req.Size); err != nil {
		return indexer.Object{}, err
	}

	computed := hex.EncodeToString(hasher.Sum(nil))

	o := indexer.Object{
		BucketID:     b.ID,
		Key:          req.Key,
		OwnerUserID:  req.OwnerUserID,
		Size:         req.Size,
		ETag:         computed,
		ContentType:  req.ContentType,
		LastModified: time.Now().UTC(),
	}

	if err := f.Index.PutObject(o); err != nil {
		return indexer.Object{}, apierror.ErrCode("failed to record object version for "+req.Key, err)
	}

	return o, nil
}

// GetObjectResult carries the resolved metadata plus the byte stream.
type GetObjectResult struct {
	Object indexer.Object
	Body   io.ReadCloser
}

// GetObject fetches metadata and, when a range is requested, only the
// requested byte span.
func (f *Facade) GetObject(ctx context.Context, bucketName, key string, rangeStart, rangeEnd *int64) (GetObjectResult, error) {
	b, ok, err := f.Index.GetBucket(bucketName)
	if err != nil {
		return GetObjectResult{}, apierror.ErrCode("failed to get bucket "+bucketName, err)
	}
	if !ok {
		return GetObjectResult{}, apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	o, ok, err := f.Index.GetObject(b.ID, key)
	if err != nil {
		return GetObjectResult{}, apierror.ErrCode("failed to get object "+key, err)
	}
	if !ok || o.IsDeleteMarker {
		return GetObjectResult{}, apierror.New(apierror.NoSuchKey, "the specified key does not exist", nil)
	}

	var body io.ReadCloser
	if rangeStart != nil && rangeEnd != nil {
		body, err = f.Store.GetObjectRange(ctx, bucketName, key, *rangeStart, *rangeEnd)
	} else {
		body, err = f.Store.GetObject(ctx, bucketName, key)
	}
	if err != nil {
		return GetObjectResult{}, err
	}

	return GetObjectResult{Object: o, Body: body}, nil
}

// DeleteObject resolves the bucket then writes a delete marker (or
// hard-deletes, depending on indexer semantics) and removes the bytes.
func (f *Facade) DeleteObject(ctx context.Context, bucketName, key string) error {
	b, ok, err := f.Index.GetBucket(bucketName)
	if err != nil {
		return apierror.ErrCode("failed to get bucket "+bucketName, err)
	}
	if !ok {
		return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	if _, err := f.Index.DeleteObject(b.ID, key); err != nil {
		return apierror.ErrCode("failed to delete object "+key, err)
	}

	if err := f.Store.DeleteObject(ctx, bucketName, key); err != nil {
		log.Errorf("storage backend failed to delete object %s/%s, leaving orphaned bytes: %s", bucketName, key, err)
	}

	return nil
}

// DeleteObjects performs best-effort per-key deletion, matching
// spec.md's "best-effort batch with per-key result" wording.
func (f *Facade) DeleteObjects(ctx context.Context, bucketName string, keys []string) ([]indexer.DeleteResult, error) {
	b, ok, err := f.Index.GetBucket(bucketName)
	if err != nil {
		return nil, apierror.ErrCode("failed to get bucket "+bucketName, err)
	}
	if !ok {
		return nil, apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	results := f.Index.DeleteObjects(b.ID, keys)
	for _, r := range results {
		if !r.Deleted {
			continue
		}
		if err := f.Store.DeleteObject(ctx, bucketName, r.Key); err != nil {
			log.Errorf("storage backend failed to delete object %s/%s, leaving orphaned bytes: %s", bucketName, r.Key, err)
		}
	}

	return results, nil
}

// CopyObject copies the source object's bytes server-side into a new
// version of the destination key, recomputing the ETag.
func (f *Facade) CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey, ownerUserID string) (indexer.Object, error) {
	srcResult, err := f.GetObject(ctx, srcBucket, srcKey, nil, nil)
	if err != nil {
		return indexer.Object{}, err
	}
	defer srcResult.Body.Close()

	return f.PutObject(ctx, PutObjectRequest{
		BucketName:  dstBucket,
		Key:         dstKey,
		OwnerUserID: ownerUserID,
		ContentType: srcResult.Object.ContentType,
		Size:        srcResult.Object.Size,
		Body:        srcResult.Body,
	})
}
