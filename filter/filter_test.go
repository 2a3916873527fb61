package filter

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/router"
	"github.com/briarcliff-cloud/s3gateway/sigv4"
)

type mapCredentialSource map[string]sigv4.Credential

func (m mapCredentialSource) Lookup(accessKey string) (sigv4.Credential, bool) {
	c, ok := m[accessKey]
	return c, ok
}

type alwaysAllow struct{}

func (alwaysAllow) Allow(string) bool { return true }

type alwaysDeny struct{}

func (alwaysDeny) Allow(string) bool { return false }

type noBuckets struct{}

func (noBuckets) GetBucket(name string) (any, bool, error) { return nil, false, nil }

type oneBucket struct{ name string }

func (o oneBucket) GetBucket(name string) (any, bool, error) {
	if name == o.name {
		return struct{}{}, true, nil
	}
	return nil, false, nil
}

func mustReq(t *testing.T, method, target string) *http.Request {
	t.Helper()
	u, err := url.Parse(target)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Request{Method: method, URL: u, Host: u.Host, Header: http.Header{}, RemoteAddr: "203.0.113.5:1234"}
}

func TestRequestIDAssignsFreshID(t *testing.T) {
	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/")
	data := &S3Data{}
	if err := RequestID(req, data); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if data.RequestID == "" {
		t.Error("expected a non-empty request id")
	}
}

func TestParserRejectsLongKey(t *testing.T) {
	rt := router.New(nil)
	longKey := make([]byte, 1025)
	for i := range longKey {
		longKey[i] = 'a'
	}
	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/bucket/"+string(longKey))
	data := &S3Data{}

	err := Parser(rt)(req, data)
	if err == nil {
		t.Fatal("expected error for over-long key")
	}
	aerr, ok := err.(apierror.Error)
	if !ok || aerr.Code != apierror.KeyTooLong {
		t.Errorf("expected KeyTooLong, got %v", err)
	}
}

func TestParserRejectsInvalidBucketName(t *testing.T) {
	rt := router.New(nil)
	req := mustReq(t, http.MethodPut, "http://s3.amazonaws.com/ab")
	data := &S3Data{}

	err := Parser(rt)(req, data)
	if err == nil {
		t.Fatal("expected error for invalid bucket name")
	}
	aerr, ok := err.(apierror.Error)
	if !ok || aerr.Code != apierror.InvalidBucketName {
		t.Errorf("expected InvalidBucketName, got %v", err)
	}
}

func TestRateLimitDeniesSurfaceAsSlowDown(t *testing.T) {
	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/")
	data := &S3Data{}

	err := RateLimit(alwaysDeny{}, nil)(req, data)
	if err == nil {
		t.Fatal("expected denial")
	}
	aerr, ok := err.(apierror.Error)
	if !ok || aerr.Code != apierror.SlowDown {
		t.Errorf("expected SlowDown, got %v", err)
	}
}

type failingShared struct{}

func (failingShared) Allow(string) (bool, error) {
	return false, apierror.New(apierror.InternalError, "unreachable", nil)
}

func TestRateLimitSharedFailureDoesNotFailRequest(t *testing.T) {
	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/")
	data := &S3Data{}

	err := RateLimit(alwaysAllow{}, failingShared{})(req, data)
	if err != nil {
		t.Errorf("expected shared-limiter failure to fail open, got %s", err)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/")
	req.Header.Set("x-forwarded-for", "198.51.100.7, 10.0.0.1")

	if got := clientIP(req); got != "198.51.100.7" {
		t.Errorf("expected 198.51.100.7, got %s", got)
	}
}

func TestClientIPFallsBackToSocketPeer(t *testing.T) {
	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/")
	if got := clientIP(req); got != "203.0.113.5" {
		t.Errorf("expected 203.0.113.5, got %s", got)
	}
}

func TestBucketResolutionMissIsNoSuchBucket(t *testing.T) {
	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/missing")
	data := &S3Data{Action: router.ListObjects, Bucket: "missing"}

	err := BucketResolution(noBuckets{})(req, data)
	if err == nil {
		t.Fatal("expected NoSuchBucket")
	}
	aerr, ok := err.(apierror.Error)
	if !ok || aerr.Code != apierror.NoSuchBucket {
		t.Errorf("expected NoSuchBucket, got %v", err)
	}
}

func TestBucketResolutionSkipsCreateBucket(t *testing.T) {
	req := mustReq(t, http.MethodPut, "http://s3.amazonaws.com/newbucket")
	data := &S3Data{Action: router.CreateBucket, Bucket: "newbucket"}

	if err := BucketResolution(noBuckets{})(req, data); err != nil {
		t.Errorf("expected CreateBucket to skip resolution, got %s", err)
	}
}

func TestPipelineShortCircuitsOnFirstError(t *testing.T) {
	rt := router.New(nil)
	lookup := mapCredentialSource{}
	pipeline := NewPipeline(lookup, "us-east-1", time.Now, rt, alwaysDeny{}, nil, noBuckets{})

	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/")
	data := &S3Data{}

	err := pipeline.Run(req, data)
	if err == nil {
		t.Fatal("expected pipeline to fail at rate limit")
	}
	if data.Action != router.ListBuckets {
		t.Errorf("expected Parser to have run before RateLimit, got action=%s", data.Action)
	}
	if data.BucketRecord != nil {
		t.Errorf("expected BucketResolution to never run")
	}
}

func TestPipelineAnonymousSuccess(t *testing.T) {
	rt := router.New(nil)
	lookup := mapCredentialSource{}
	pipeline := NewPipeline(lookup, "us-east-1", time.Now, rt, alwaysAllow{}, nil, noBuckets{})

	req := mustReq(t, http.MethodGet, "http://s3.amazonaws.com/")
	data := &S3Data{}

	if err := pipeline.Run(req, data); err != nil {
		t.Fatalf("expected anonymous ListBuckets to pass the pipeline, got %s", err)
	}
	if data.RequestID == "" {
		t.Error("expected a request id to be assigned")
	}
}
