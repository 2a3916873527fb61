package filter

import (
	"time"

	"github.com/briarcliff-cloud/s3gateway/router"
	"github.com/briarcliff-cloud/s3gateway/sigv4"
)

// NewPipeline assembles the fixed six-filter order from spec:
// RequestId, Authentication, Parser, RateLimit, SecretKey,
// BucketResolution. shared may be nil if no distributed limiter is
// configured.
func NewPipeline(lookup sigv4.CredentialSource, region string, clock func() time.Time, rt *router.Router, local Limiter, shared SharedLimiter, store BucketStore) Pipeline {
	return Pipeline{
		RequestID,
		Authentication(lookup, region, clock),
		Parser(rt),
		RateLimit(local, shared),
		SecretKey(lookup),
		BucketResolution(store),
	}
}
