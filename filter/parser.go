package filter

import (
	"net/http"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/router"
)

// Parser runs the router, writes action/bucket/key/host onto the
// context, and validates key length and bucket name. Key-length and
// bucket-name failures happen here, not in the dispatch table.
func Parser(rt *router.Router) Filter {
	return func(req *http.Request, data *S3Data) error {
		result := rt.Route(req)

		data.Host = req.Host
		data.Scope = result.Scope
		data.Action = result.Action
		data.Bucket = result.Bucket
		data.Key = result.Key

		if result.Key != "" && !router.ValidKeyLength(result.Key) {
			return apierror.New(apierror.KeyTooLong, "your key is too long", nil)
		}

		if result.Bucket != "" && (result.Scope == router.ScopeBucket || result.Scope == router.ScopeKey) {
			if !router.ValidBucketName(result.Bucket) {
				return apierror.New(apierror.InvalidBucketName, "the specified bucket is not valid", nil)
			}
		}

		return nil
	}
}
