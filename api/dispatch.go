package api

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/filter"
	"github.com/briarcliff-cloud/s3gateway/fullstack"
	"github.com/briarcliff-cloud/s3gateway/indexer"
	"github.com/briarcliff-cloud/s3gateway/router"
)

const timeFormat = time.RFC1123

// maxDeleteRequestBody bounds the batch-delete XML body read into
// memory. It carries key names only (up to 1000 per request per
// spec), never object bytes, so a small bound is safe.
const maxDeleteRequestBody = 2 << 20 // 2 MiB

// dispatch runs the resolved action against the fullstack façade and
// writes the HTTP response. The filter pipeline has already populated
// data with everything the action needs (credential, bucket, key,
// resolved bucket record).
func dispatch(f *fullstack.Facade, region string, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	if router.IsStub(data.Action) {
		return apierror.New(apierror.NotImplemented, "this operation is not implemented", nil)
	}

	ctx := req.Context()

	switch data.Action {
	case router.ListBuckets:
		buckets, err := f.Index.ListBuckets(data.Credential.UserID)
		if err != nil {
			return err
		}
		entries := make([]bucketEntry, 0, len(buckets))
		for _, b := range buckets {
			entries = append(entries, bucketEntry{Name: b.Name, CreationDate: b.CreatedAt.UTC().Format(time.RFC3339)})
		}
		writeXML(w, http.StatusOK, listAllMyBucketsResult{
			Owner:   Owner{ID: data.Credential.UserID, DisplayName: data.Credential.UserID},
			Buckets: entries,
		})
		return nil

	case router.CreateBucket:
		b, err := f.CreateBucket(ctx, data.Bucket, data.Credential.UserID)
		if err != nil {
			return err
		}
		w.Header().Set("Location", "/"+b.Name)
		w.WriteHeader(http.StatusCreated)
		return nil

	case router.DeleteBucket:
		if err := f.DeleteBucket(ctx, data.Bucket); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil

	case router.HeadBucket:
		w.WriteHeader(http.StatusOK)
		return nil

	case router.GetBucketLocation:
		writeXML(w, http.StatusOK, locationConstraint{Region: region})
		return nil

	case router.GetBucketVersioning:
		writeXML(w, http.StatusOK, versioningConfiguration{})
		return nil

	case router.ListObjectVersions:
		return dispatchListObjectVersions(f, w, data)

	case router.ListObjectsV2, router.ListObjects:
		return dispatchListObjects(f, w, req, data)

	case router.ListMultipartUploads:
		uploads, err := f.ListMultipartUploads(ctx, data.Bucket)
		if err != nil {
			return err
		}
		entries := make([]uploadEntry, 0, len(uploads))
		for _, u := range uploads {
			entries = append(entries, uploadEntry{Key: u.Key, UploadID: u.UploadID, Initiated: u.Initiated.UTC().Format(time.RFC3339)})
		}
		writeXML(w, http.StatusOK, listMultipartUploadsResult{Bucket: data.Bucket, Upload: entries})
		return nil

	case router.DeleteObjects:
		return dispatchDeleteObjects(f, w, req, data)

	case router.PostObject:
		return apierror.New(apierror.NotImplemented, "browser-based POST upload is not implemented", nil)

	case router.UploadPartCopy:
		return dispatchUploadPartCopy(f, w, req, data)

	case router.UploadPart:
		return dispatchUploadPart(f, w, req, data)

	case router.CopyObject:
		return dispatchCopyObject(f, w, req, data)

	case router.PutObject:
		return dispatchPutObject(f, w, req, data)

	case router.CompleteMultipartUpload:
		return dispatchCompleteMultipartUpload(f, w, req, data)

	case router.CreateMultipartUpload:
		u, err := f.CreateMultipartUpload(ctx, data.Bucket, data.Key, data.Credential.UserID, req.Header.Get("Content-Type"))
		if err != nil {
			return err
		}
		writeXML(w, http.StatusOK, initiateMultipartUploadResult{Bucket: data.Bucket, Key: data.Key, UploadID: u.UploadID})
		return nil

	case router.AbortMultipartUpload:
		uploadID := req.URL.Query().Get("uploadId")
		if err := f.AbortMultipartUpload(ctx, data.Bucket, data.Key, uploadID); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil

	case router.ListParts:
		uploadID := req.URL.Query().Get("uploadId")
		parts, err := f.ListParts(ctx, uploadID)
		if err != nil {
			return err
		}
		entries := make([]partEntry, 0, len(parts))
		for _, p := range parts {
			entries = append(entries, partEntry{PartNumber: p.PartNumber, ETag: quoteETag(p.ETag), Size: p.Size})
		}
		writeXML(w, http.StatusOK, listPartsResult{Bucket: data.Bucket, Key: data.Key, UploadID: uploadID, Part: entries})
		return nil

	case router.GetObject, router.HeadObject:
		return dispatchGetObject(f, w, req, data)

	case router.DeleteObject:
		if err := f.DeleteObject(ctx, data.Bucket, data.Key); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil

	default:
		return apierror.New(apierror.NotImplemented, "unrecognized operation", nil)
	}
}

func dispatchListObjects(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	b, ok := data.BucketRecord.(*indexer.Bucket)
	if !ok {
		return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	q := req.URL.Query()
	prefix := q.Get("prefix")
	marker := q.Get("marker")
	if marker == "" {
		marker = q.Get("continuation-token")
	}
	delimiter := q.Get("delimiter")

	limit := 1000
	if v := q.Get("max-keys"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	objects, next, err := f.Index.ListObjects(b.ID, prefix, marker, delimiter, limit)
	if err != nil {
		return err
	}

	entries := make([]objectEntry, 0, len(objects))
	for _, o := range objects {
		entries = append(entries, objectEntry{
			Key:          o.Key,
			LastModified: o.LastModified.UTC().Format(time.RFC3339),
			ETag:         quoteETag(o.ETag),
			Size:         o.Size,
			StorageClass: "STANDARD",
		})
	}

	writeXML(w, http.StatusOK, listBucketResult{
		Name:        data.Bucket,
		Prefix:      prefix,
		Marker:      marker,
		NextMarker:  next,
		MaxKeys:     limit,
		IsTruncated: next != "",
		Contents:    entries,
	})
	return nil
}

func dispatchListObjectVersions(f *fullstack.Facade, w http.ResponseWriter, data *filter.S3Data) error {
	b, ok := data.BucketRecord.(*indexer.Bucket)
	if !ok {
		return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	versions, err := f.Index.ListObjectVersions(b.ID, data.Key)
	if err != nil {
		return err
	}

	entries := make([]versionEntry, 0, len(versions))
	for _, v := range versions {
		entries = append(entries, versionEntry{
			Key:          v.Key,
			VersionId:    v.VersionID,
			IsLatest:     v.IsLatest,
			LastModified: v.LastModified.UTC().Format(time.RFC3339),
			ETag:         quoteETag(v.ETag),
			Size:         v.Size,
		})
	}

	writeXML(w, http.StatusOK, listVersionsResult{Name: data.Bucket, Version: entries})
	return nil
}

func dispatchDeleteObjects(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	body, err := io.ReadAll(io.LimitReader(data.Body, maxDeleteRequestBody))
	if err != nil {
		return apierror.New(apierror.IncompleteBody, "failed to read request body", err)
	}

	var reqBody deleteObjectsRequest
	if err := xml.Unmarshal(body, &reqBody); err != nil {
		return apierror.New(apierror.MalformedXML, "the XML you provided was not well-formed", err)
	}

	keys := make([]string, 0, len(reqBody.Object))
	for _, o := range reqBody.Object {
		keys = append(keys, o.Key)
	}

	results, err := f.DeleteObjects(req.Context(), data.Bucket, keys)
	if err != nil {
		return err
	}

	out := deleteResultBody{}
	for _, r := range results {
		if r.Deleted {
			out.Deleted = append(out.Deleted, deletedEntry{Key: r.Key})
			continue
		}
		msg := ""
		code := string(apierror.InternalError)
		if aerr, ok := r.Err.(apierror.Error); ok {
			code = aerr.AWSCode
			msg = aerr.Message
		}
		out.Error = append(out.Error, deleteErrorEntry{Key: r.Key, Code: code, Message: msg})
	}

	writeXML(w, http.StatusOK, out)
	return nil
}

func dispatchPutObject(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	if req.Header.Get("Content-Length") == "" && req.ContentLength < 0 {
		return apierror.New(apierror.MissingContentLength, "you must provide the Content-Length HTTP header", nil)
	}

	o, err := f.PutObject(req.Context(), fullstack.PutObjectRequest{
		BucketName:  data.Bucket,
		Key:         data.Key,
		OwnerUserID: data.Credential.UserID,
		ContentType: req.Header.Get("Content-Type"),
		Size:        req.ContentLength,
		Body:        io.LimitReader(data.Body, req.ContentLength),
	})
	if err != nil {
		return err
	}

	w.Header().Set("ETag", quoteETag(o.ETag))
	w.WriteHeader(http.StatusOK)
	return nil
}

func dispatchCopyObject(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	srcBucket, srcKey, err := parseCopySource(req.Header.Get("x-amz-copy-source"))
	if err != nil {
		return err
	}

	o, err := f.CopyObject(req.Context(), srcBucket, srcKey, data.Bucket, data.Key, data.Credential.UserID)
	if err != nil {
		return err
	}

	writeXML(w, http.StatusOK, copyObjectResult{ETag: quoteETag(o.ETag), LastModified: o.LastModified.UTC().Format(time.RFC3339)})
	return nil
}

func dispatchUploadPart(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	if req.Header.Get("Content-Length") == "" && req.ContentLength < 0 {
		return apierror.New(apierror.MissingContentLength, "you must provide the Content-Length HTTP header", nil)
	}

	partNumber, uploadID, err := partParams(req)
	if err != nil {
		return err
	}

	etag, err := f.UploadPart(req.Context(), data.Bucket, data.Key, uploadID, partNumber, req.ContentLength, io.LimitReader(data.Body, req.ContentLength))
	if err != nil {
		return err
	}

	w.Header().Set("ETag", quoteETag(etag))
	w.WriteHeader(http.StatusOK)
	return nil
}

func dispatchUploadPartCopy(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	partNumber, uploadID, err := partParams(req)
	if err != nil {
		return err
	}

	srcBucket, srcKey, err := parseCopySource(req.Header.Get("x-amz-copy-source"))
	if err != nil {
		return err
	}

	etag, err := f.UploadPartCopy(req.Context(), srcBucket, srcKey, data.Bucket, data.Key, uploadID, partNumber)
	if err != nil {
		return err
	}

	writeXML(w, http.StatusOK, copyObjectResult{ETag: quoteETag(etag)})
	return nil
}

func dispatchCompleteMultipartUpload(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	uploadID := req.URL.Query().Get("uploadId")

	o, err := f.CompleteMultipartUpload(req.Context(), data.Bucket, data.Key, uploadID, data.Credential.UserID)
	if err != nil {
		return err
	}

	writeXML(w, http.StatusOK, completeMultipartUploadResult{
		Location: "/" + data.Bucket + "/" + data.Key,
		Bucket:   data.Bucket,
		Key:      data.Key,
		ETag:     quoteETag(o.ETag),
	})
	return nil
}

func dispatchGetObject(f *fullstack.Facade, w http.ResponseWriter, req *http.Request, data *filter.S3Data) error {
	b, ok := data.BucketRecord.(*indexer.Bucket)
	if !ok {
		return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}

	o, ok, err := f.Index.GetObject(b.ID, data.Key)
	if err != nil {
		return err
	}
	if !ok || o.IsDeleteMarker {
		return apierror.New(apierror.NoSuchKey, "the specified key does not exist", nil)
	}

	start, end, err := parseRange(req.Header.Get("Range"), o.Size)
	if err != nil {
		return err
	}

	status := http.StatusOK
	size := o.Size
	if start != nil && end != nil {
		status = http.StatusPartialContent
		size = *end - *start + 1
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", *start, *end, o.Size))
	}

	w.Header().Set("ETag", quoteETag(o.ETag))
	w.Header().Set("Content-Type", o.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.Header().Set("Last-Modified", o.LastModified.UTC().Format(timeFormat))

	if req.Method == http.MethodHead {
		w.WriteHeader(status)
		return nil
	}

	result, err := f.GetObject(req.Context(), data.Bucket, data.Key, start, end)
	if err != nil {
		return err
	}
	defer result.Body.Close()

	w.WriteHeader(status)
	copyBody(w, result.Body)
	return nil
}
