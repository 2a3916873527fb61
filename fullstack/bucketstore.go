package fullstack

import "github.com/briarcliff-cloud/s3gateway/indexer"

// IndexBucketStore adapts an indexer.Indexer to filter.BucketStore:
// the filter package's interface boxes the record as `any` to stay
// free of an import on indexer, so this wrapper narrows Indexer's
// typed GetBucket down to that shape.
type IndexBucketStore struct {
	Index indexer.Indexer
}

// GetBucket satisfies filter.BucketStore. The boxed value is always a
// *indexer.Bucket.
func (s IndexBucketStore) GetBucket(name string) (any, bool, error) {
	b, ok, err := s.Index.GetBucket(name)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &b, true, nil
}
