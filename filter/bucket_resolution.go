package filter

import (
	"net/http"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/router"
)

// BucketStore is the narrow lookup BucketResolution needs; the
// indexer's GetBucket method satisfies it.
type BucketStore interface {
	GetBucket(name string) (any, bool, error)
}

// BucketResolution queries the indexer for the bucket record on every
// action except CreateBucket (which is expected not to exist yet); a
// miss is NoSuchBucket.
func BucketResolution(store BucketStore) Filter {
	return func(req *http.Request, data *S3Data) error {
		if data.Action == router.CreateBucket {
			return nil
		}
		if data.Bucket == "" {
			return nil
		}

		record, ok, err := store.GetBucket(data.Bucket)
		if err != nil {
			return apierror.ErrCode("failed to resolve bucket "+data.Bucket, err)
		}
		if !ok {
			return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
		}

		data.BucketRecord = record
		return nil
	}
}
