package filestore

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// S3BackendOption is a function to set S3Backend options.
type S3BackendOption func(*S3Backend)

// S3Backend fronts a real S3-compatible endpoint as the gateway's byte
// store; buckets and keys are addressed exactly as the caller passes
// them, with no name-prefixing.
type S3Backend struct {
	S3         s3iface.S3API
	S3Uploader s3manageriface.UploaderAPI
	config     *aws.Config
}

// NewS3Backend builds an S3Backend from the gateway's configuration
// map (akid, secret, token, region, endpoint, force_path_style).
func NewS3Backend(config map[string]interface{}) (*S3Backend, error) {
	var akid, secret, token, region, endpoint string
	if v, ok := config["akid"].(string); ok {
		akid = v
	}
	if v, ok := config["secret"].(string); ok {
		secret = v
	}
	if v, ok := config["token"].(string); ok {
		token = v
	}
	if v, ok := config["region"].(string); ok {
		region = v
	}
	if v, ok := config["endpoint"].(string); ok {
		endpoint = v
	}

	opts := []S3BackendOption{WithStaticCredentials(akid, secret, token), WithForcePathStyle(true)}
	if region != "" {
		opts = append(opts, WithRegion(region))
	}
	if endpoint != "" {
		opts = append(opts, WithEndpoint(endpoint))
	}

	return New(opts...)
}

// New creates an S3Backend from a list of S3BackendOption functions.
func New(opts ...S3BackendOption) (*S3Backend, error) {
	log.Info("creating new s3 file storage backend")

	b := S3Backend{}
	b.config = aws.NewConfig()

	for _, opt := range opts {
		opt(&b)
	}

	sess := session.Must(session.NewSession(b.config))

	b.S3 = s3.New(sess)
	b.S3Uploader = s3manager.NewUploaderWithClient(b.S3)

	return &b, nil
}

// WithStaticCredentials authenticates with AWS static credentials (key, secret, token).
func WithStaticCredentials(akid, secret, token string) S3BackendOption {
	return func(b *S3Backend) {
		log.Debugf("setting static credentials with akid %s", akid)
		b.config.WithCredentials(credentials.NewStaticCredentials(akid, secret, token))
	}
}

// WithRegion sets the region for the S3Backend.
func WithRegion(region string) S3BackendOption {
	return func(b *S3Backend) {
		log.Debugf("setting region %s", region)
		b.config.WithRegion(region)
	}
}

// WithEndpoint sets the endpoint for the S3Backend, pointing it at the
// real S3-compatible store this gateway fronts.
func WithEndpoint(endpoint string) S3BackendOption {
	return func(b *S3Backend) {
		log.Debugf("setting endpoint %s", endpoint)
		b.config.WithEndpoint(endpoint)
	}
}

// WithForcePathStyle forces path-style addressing against the backing
// store, required by most non-AWS S3-compatible endpoints.
func WithForcePathStyle(force bool) S3BackendOption {
	return func(b *S3Backend) {
		b.config.WithS3ForcePathStyle(force)
	}
}

// GetObject streams the full object body from the backing store.
func (b *S3Backend) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := b.S3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, apierror.ErrCode("failed to get object "+bucket+"/"+key, err)
	}
	return out.Body, nil
}

// GetObjectRange streams bytes [start, end] inclusive from the backing
// store.
func (b *S3Backend) GetObjectRange(ctx context.Context, bucket, key string, start, end int64) (io.ReadCloser, error) {
	out, err := b.S3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", start, end)),
	})
	if err != nil {
		return nil, apierror.ErrCode("failed to get object range "+bucket+"/"+key, err)
	}
	return out.Body, nil
}

// SaveObject uploads body to the backing store and returns the
// resulting object's hex MD5 ETag.
func (b *S3Backend) SaveObject(ctx context.Context, bucket, key string, body io.Reader, size int64) (string, error) {
	out, err := b.S3Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return "", apierror.ErrCode("failed to save object "+bucket+"/"+key, err)
	}

	etag := aws.StringValue(out.ETag)
	return trimQuotes(etag), nil
}

// DeleteObject removes the object's bytes from the backing store.
func (b *S3Backend) DeleteObject(ctx context.Context, bucket, key string) error {
	if _, err := b.S3.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return apierror.ErrCode("failed to delete object "+bucket+"/"+key, err)
	}
	return nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
