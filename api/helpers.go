package api

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// quoteETag wraps an ETag in double quotes, matching the wire form
// every S3 client expects, unless it already has them.
func quoteETag(etag string) string {
	if etag == "" {
		return etag
	}
	if strings.HasPrefix(etag, `"`) {
		return etag
	}
	return `"` + etag + `"`
}

// parseCopySource splits an x-amz-copy-source header value
// ("/bucket/key" or "bucket/key", URL-encoded) into bucket and key.
func parseCopySource(header string) (bucket, key string, err error) {
	decoded, uerr := url.QueryUnescape(header)
	if uerr != nil {
		decoded = header
	}
	decoded = strings.TrimPrefix(decoded, "/")

	idx := strings.IndexByte(decoded, '/')
	if idx < 0 {
		return "", "", apierror.New(apierror.InvalidArgument, "x-amz-copy-source must be of the form bucket/key", nil)
	}
	return decoded[:idx], decoded[idx+1:], nil
}

// partParams reads and validates the partNumber/uploadId query
// parameters shared by UploadPart/UploadPartCopy.
func partParams(req *http.Request) (partNumber int, uploadID string, err error) {
	q := req.URL.Query()
	uploadID = q.Get("uploadId")

	n, perr := strconv.Atoi(q.Get("partNumber"))
	if perr != nil {
		return 0, "", apierror.New(apierror.InvalidArgument, "partNumber must be an integer", nil)
	}
	return n, uploadID, nil
}

// copyBody streams body to w, logging (not failing the already-started
// response) on a write error.
func copyBody(w http.ResponseWriter, body io.Reader) {
	if _, err := io.Copy(w, body); err != nil {
		log.Errorf("failed writing response body: %s", err)
	}
}
