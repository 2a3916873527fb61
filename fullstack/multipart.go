package fullstack

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/indexer"
)

// CreateMultipartUpload begins a new upload for bucketName/key.
func (f *Facade) CreateMultipartUpload(ctx context.Context, bucketName, key, ownerUserID, contentType string) (indexer.MultipartUpload, error) {
	b, ok, err := f.Index.GetBucket(bucketName)
	if err != nil {
		return indexer.MultipartUpload{}, apierror.ErrCode("failed to get bucket "+bucketName, err)
	}
	if !ok {
		return indexer.MultipartUpload{}, apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	return f.Index.CreateMultipartUpload(b.ID, key, ownerUserID)
}

// UploadPart streams one part's bytes to storage under a part-scoped
// key and records its size/ETag in the indexer. partNumber must be in
// [1, 10000].
func (f *Facade) UploadPart(ctx context.Context, bucketName, key, uploadID string, partNumber int, size int64, body io.Reader) (string, error) {
	if partNumber < 1 || partNumber > 10000 {
		return "", apierror.New(apierror.InvalidArgument, "part number must be between 1 and 10000", nil)
	}

	hasher := md5.New()
	tee := io.TeeReader(body, hasher)

	partKey := partStorageKey(key, uploadID, partNumber)
	if _, err := f.Store.SaveObject(ctx, bucketName, partKey, tee, size); err != nil {
		return "", err
	}

	etag := hex.EncodeToString(hasher.Sum(nil))
	if err := f.Index.UploadPart(uploadID, partNumber, size, etag); err != nil {
		return "", apierror.ErrCode("failed to record part "+fmt.Sprint(partNumber), err)
	}

	return etag, nil
}

// UploadPartCopy is UploadPart sourced from an existing object's bytes
// rather than the request body.
func (f *Facade) UploadPartCopy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey, uploadID string, partNumber int) (string, error) {
	src, err := f.GetObject(ctx, srcBucket, srcKey, nil, nil)
	if err != nil {
		return "", err
	}
	defer src.Body.Close()

	return f.UploadPart(ctx, dstBucket, dstKey, uploadID, partNumber, src.Object.Size, src.Body)
}

// ListParts returns the uploaded parts for an in-progress upload,
// ordered by part number.
func (f *Facade) ListParts(ctx context.Context, uploadID string) ([]indexer.Part, error) {
	return f.Index.ListParts(uploadID)
}

// ListMultipartUploads returns the uploads in progress for a bucket.
func (f *Facade) ListMultipartUploads(ctx context.Context, bucketName string) ([]indexer.MultipartUpload, error) {
	b, ok, err := f.Index.GetBucket(bucketName)
	if err != nil {
		return nil, apierror.ErrCode("failed to get bucket "+bucketName, err)
	}
	if !ok {
		return nil, apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}
	return f.Index.ListMultipartUploads(b.ID)
}

// AbortMultipartUpload discards an in-progress upload and its parts'
// bytes.
func (f *Facade) AbortMultipartUpload(ctx context.Context, bucketName, key, uploadID string) error {
	parts, err := f.Index.ListParts(uploadID)
	if err != nil {
		return err
	}

	if err := f.Index.AbortMultipartUpload(uploadID); err != nil {
		return apierror.ErrCode("failed to abort upload "+uploadID, err)
	}

	for _, p := range parts {
		partKey := partStorageKey(key, uploadID, p.PartNumber)
		if err := f.Store.DeleteObject(ctx, bucketName, partKey); err != nil {
			continue
		}
	}

	return nil
}

// CompleteMultipartUpload validates part-number ordering and minimum
// part size (5 MiB except the last), assembles the part bytes into
// the final object, and computes the multipart ETag (hex MD5 of the
// concatenated part MD5s, suffixed by "-N").
func (f *Facade) CompleteMultipartUpload(ctx context.Context, bucketName, key, uploadID, ownerUserID string) (indexer.Object, error) {
	b, ok, err := f.Index.GetBucket(bucketName)
	if err != nil {
		return indexer.Object{}, apierror.ErrCode("failed to get bucket "+bucketName, err)
	}
	if !ok {
		return indexer.Object{}, apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	parts, err := f.Index.ListParts(uploadID)
	if err != nil {
		return indexer.Object{}, err
	}
	if len(parts) == 0 {
		return indexer.Object{}, apierror.New(apierror.InvalidPart, "at least one part is required", nil)
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNumber < parts[j].PartNumber })

	var total int64
	concatMD5 := make([]byte, 0, len(parts)*md5.Size)
	for i, p := range parts {
		if i > 0 && p.PartNumber <= parts[i-1].PartNumber {
			return indexer.Object{}, apierror.New(apierror.InvalidPartOrder, "part numbers must be in ascending order", nil)
		}
		if i < len(parts)-1 && p.Size < minPartSize {
			return indexer.Object{}, apierror.New(apierror.EntityTooSmall, "your proposed upload is smaller than the minimum allowed object size", nil)
		}

		raw, err := hex.DecodeString(p.ETag)
		if err != nil {
			return indexer.Object{}, apierror.New(apierror.InvalidPart, "malformed part etag", err)
		}
		concatMD5 = append(concatMD5, raw...)
		total += p.Size
	}

	if total > maxObjectSize {
		return indexer.Object{}, apierror.New(apierror.EntityTooLarge, "your proposed upload exceeds the maximum allowed size", nil)
	}

	sum := md5.Sum(concatMD5)
	etag := fmt.Sprintf("%s-%d", hex.EncodeToString(sum[:]), len(parts))

	body, closeParts, err := f.assembledPartReader(ctx, bucketName, key, uploadID, parts)
	if err != nil {
		return indexer.Object{}, err
	}
	defer closeParts()

	if _, err := f.Store.SaveObject(ctx, bucketName, key, body, total); err != nil {
		return indexer.Object{}, err
	}

	o := indexer.Object{
		BucketID:     b.ID,
		Key:          key,
		OwnerUserID:  ownerUserID,
		Size:         total,
		ETag:         etag,
		LastModified: time.Now().UTC(),
	}

	if err := f.Index.PutObject(o); err != nil {
		return indexer.Object{}, apierror.ErrCode("failed to record completed object "+key, err)
	}

	if err := f.Index.AbortMultipartUpload(uploadID); err != nil {
		return o, nil // upload bookkeeping cleanup failure must not fail the completed upload
	}

	for _, p := range parts {
		_ = f.Store.DeleteObject(ctx, bucketName, partStorageKey(key, uploadID, p.PartNumber))
	}

	return o, nil
}

// assembledPartReader concatenates each part's stored bytes in order.
func (f *Facade) assembledPartReader(ctx context.Context, bucketName, key, uploadID string, parts []indexer.Part) (io.Reader, func(), error) {
	readers := make([]io.Reader, 0, len(parts))
	closers := make([]io.Closer, 0, len(parts))
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	for _, p := range parts {
		rc, err := f.Store.GetObject(ctx, bucketName, partStorageKey(key, uploadID, p.PartNumber))
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		readers = append(readers, rc)
		closers = append(closers, rc)
	}

	return io.MultiReader(readers...), closeAll, nil
}

func partStorageKey(key, uploadID string, partNumber int) string {
	return fmt.Sprintf("%s\x00parts\x00%s\x00%05d", key, uploadID, partNumber)
}
