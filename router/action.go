package router

// S3Action tags a request with the concrete S3 operation the router
// resolved it to. A request that matches no row resolves to Unknown.
type S3Action string

const (
	Unknown S3Action = "Unknown"

	ListBuckets S3Action = "ListBuckets"

	CreateBucket         S3Action = "CreateBucket"
	DeleteBucket         S3Action = "DeleteBucket"
	HeadBucket           S3Action = "HeadBucket"
	GetBucketLocation    S3Action = "GetBucketLocation"
	GetBucketVersioning  S3Action = "GetBucketVersioning"
	ListObjectVersions   S3Action = "ListObjectVersions"
	ListMultipartUploads S3Action = "ListMultipartUploads"
	ListObjectsV2        S3Action = "ListObjectsV2"
	ListObjects          S3Action = "ListObjects"
	DeleteObjects        S3Action = "DeleteObjects"
	PostObject           S3Action = "PostObject"

	UploadPartCopy          S3Action = "UploadPartCopy"
	UploadPart              S3Action = "UploadPart"
	CopyObject              S3Action = "CopyObject"
	PutObject               S3Action = "PutObject"
	CompleteMultipartUpload S3Action = "CompleteMultipartUpload"
	CreateMultipartUpload   S3Action = "CreateMultipartUpload"
	AbortMultipartUpload    S3Action = "AbortMultipartUpload"
	ListParts               S3Action = "ListParts"
	GetObject               S3Action = "GetObject"
	HeadObject              S3Action = "HeadObject"
	DeleteObject            S3Action = "DeleteObject"

	// Stub actions: routed to a real tag (so dispatch determinism holds
	// for them too) but always answered NotImplemented. None of these
	// are named in the spec's non-goals; they are out-of-scope surface
	// area the router still resolves deterministically.
	GetBucketLifecycle    S3Action = "GetBucketLifecycle"
	PutBucketLifecycle    S3Action = "PutBucketLifecycle"
	DeleteBucketLifecycle S3Action = "DeleteBucketLifecycle"
	GetBucketCors         S3Action = "GetBucketCors"
	PutBucketCors         S3Action = "PutBucketCors"
	DeleteBucketCors      S3Action = "DeleteBucketCors"
	GetBucketAcl          S3Action = "GetBucketAcl"
	PutBucketAcl          S3Action = "PutBucketAcl"
	GetObjectAcl          S3Action = "GetObjectAcl"
	PutObjectAcl          S3Action = "PutObjectAcl"
	GetBucketNotification S3Action = "GetBucketNotification"
	PutBucketNotification S3Action = "PutBucketNotification"
	GetBucketWebsite      S3Action = "GetBucketWebsite"
	PutBucketWebsite      S3Action = "PutBucketWebsite"
	DeleteBucketWebsite   S3Action = "DeleteBucketWebsite"
)

// stubActions answer NotImplemented uniformly regardless of how far
// the rest of the request pipeline would otherwise take them.
var stubActions = map[S3Action]bool{
	GetBucketLifecycle:    true,
	PutBucketLifecycle:    true,
	DeleteBucketLifecycle: true,
	GetBucketCors:         true,
	PutBucketCors:         true,
	DeleteBucketCors:      true,
	GetBucketAcl:          true,
	PutBucketAcl:          true,
	GetObjectAcl:          true,
	PutObjectAcl:          true,
	GetBucketNotification: true,
	PutBucketNotification: true,
	GetBucketWebsite:      true,
	PutBucketWebsite:      true,
	DeleteBucketWebsite:   true,
}

// IsStub reports whether action is routed-but-unimplemented surface
// area that must answer NotImplemented rather than dispatch further.
func IsStub(action S3Action) bool {
	return stubActions[action]
}
