// Package indexer implements the gateway's metadata store: the narrow
// capability set spec.md calls the Indexer, covering buckets, object
// versions, and multipart upload bookkeeping. Byte storage lives in
// filestore; this package only ever touches rows.
package indexer

import "time"

// Bucket is a uniquely named container owned by exactly one user.
type Bucket struct {
	ID          string
	Name        string
	OwnerUserID string
	CreatedAt   time.Time
}

// Object is one version of a key within a bucket.
type Object struct {
	BucketID       string
	Key            string
	VersionID      string
	OwnerUserID    string
	IsLatest       bool
	IsDeleteMarker bool
	Size           int64
	ETag           string
	ContentType    string
	LastModified   time.Time
}

// Part is one uploaded chunk of a multipart upload.
type Part struct {
	UploadID   string
	PartNumber int
	Size       int64
	ETag       string
}

// MultipartUpload is an in-progress upload awaiting completion or abort.
type MultipartUpload struct {
	UploadID  string
	BucketID  string
	Key       string
	Initiated time.Time
}

// DeleteResult is the per-key outcome of a batch DeleteObjects call.
type DeleteResult struct {
	Key     string
	Deleted bool
	Err     error
}

// Indexer is the metadata capability the fullstack façade consumes.
// Every operation is fallible and returns typed apierror errors.
type Indexer interface {
	GetBucket(name string) (Bucket, bool, error)
	ListBuckets(ownerUserID string) ([]Bucket, error)
	GetBucketQuota(ownerUserID string) (int, error)
	CreateBucket(b Bucket) error
	DeleteBucket(bucketID string) error

	GetObject(bucketID, key string) (Object, bool, error)
	ListObjects(bucketID, prefix, marker, delimiter string, limit int) ([]Object, string, error)
	ListObjectVersions(bucketID, key string) ([]Object, error)
	PutObject(o Object) error
	DeleteObject(bucketID, key string) (Object, error)
	DeleteObjects(bucketID string, keys []string) []DeleteResult
	CountObjects(bucketID string) (int, error)

	CreateMultipartUpload(bucketID, key, ownerUserID string) (MultipartUpload, error)
	UploadPart(uploadID string, partNumber int, size int64, etag string) error
	ListParts(uploadID string) ([]Part, error)
	ListMultipartUploads(bucketID string) ([]MultipartUpload, error)
	AbortMultipartUpload(uploadID string) error
	CompleteMultipartUpload(uploadID string) (Object, error)
}
