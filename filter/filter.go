// Package filter implements the ordered, short-circuiting request
// pipeline: request id assignment, signature verification, routing,
// rate limiting, key-cache re-check, and bucket resolution, all
// writing into a shared per-request S3Data context.
package filter

import (
	"io"
	"net/http"

	"github.com/briarcliff-cloud/s3gateway/router"
	"github.com/briarcliff-cloud/s3gateway/sigv4"
)

// S3Data is the per-request context threaded through the filter
// pipeline, created at HTTP accept and discarded at response send.
type S3Data struct {
	RequestID string

	Method string
	URL    string
	Header http.Header

	// Body is the request's unconsumed body stream. No filter reads
	// from it; it reaches dispatch untouched so PutObject/UploadPart
	// can stream bytes straight to storage instead of buffering a
	// whole object in memory.
	Body io.Reader

	Credential sigv4.Credential
	AuthType   sigv4.AuthType

	Host   string
	Scope  router.Scope
	Action router.S3Action
	Bucket string
	Key    string

	// BucketRecord holds whatever the bucket-resolution filter loaded
	// for Bucket; nil until BucketResolution runs (and always nil for
	// CreateBucket, which is exempt). Concretely an *indexer.Bucket.
	BucketRecord any
}

// Filter transforms or validates the shared context, returning an
// error (always an apierror.Error in practice) to short-circuit the
// remaining pipeline.
type Filter func(req *http.Request, data *S3Data) error

// Pipeline is the fixed ordered list of filters. Run stops and returns
// at the first error.
type Pipeline []Filter

// Run executes every filter in order against req and data, stopping at
// the first failing filter.
func (p Pipeline) Run(req *http.Request, data *S3Data) error {
	for _, f := range p {
		if err := f(req, data); err != nil {
			return err
		}
	}
	return nil
}
