package fullstack

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/filestore"
	"github.com/briarcliff-cloud/s3gateway/indexer"
)

func newTestFacade() *Facade {
	return New(indexer.NewMemIndexer(100), filestore.NewMemoryBackend())
}

func TestCreateBucketRejectsDuplicateName(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err == nil {
		t.Fatal("expected error for re-creating own bucket")
	} else if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.BucketAlreadyOwnedByYou {
		t.Errorf("expected BucketAlreadyOwnedByYou, got %v", err)
	}

	if _, err := f.CreateBucket(ctx, "bucket-a", "bob"); err == nil {
		t.Fatal("expected error for someone else's bucket name")
	} else if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.BucketAlreadyExists {
		t.Errorf("expected BucketAlreadyExists, got %v", err)
	}
}

func TestCreateBucketEnforcesQuota(t *testing.T) {
	index := indexer.NewMemIndexer(1)
	f := New(index, filestore.NewMemoryBackend())
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := f.CreateBucket(ctx, "bucket-b", "alice")
	if err == nil {
		t.Fatal("expected quota error")
	}
	if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.TooManyBuckets {
		t.Errorf("expected TooManyBuckets, got %v", err)
	}
}

func TestDeleteBucketRejectsNonEmptyBucket(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := f.PutObject(ctx, PutObjectRequest{BucketName: "bucket-a", Key: "k", OwnerUserID: "alice", Size: 3, Body: bytes.NewReader([]byte("abc"))}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	err := f.DeleteBucket(ctx, "bucket-a")
	if err == nil {
		t.Fatal("expected BucketNotEmpty error")
	}
	if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.BucketNotEmpty {
		t.Errorf("expected BucketNotEmpty, got %v", err)
	}
}

func TestDeleteBucketSucceedsWhenEmpty(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if err := f.DeleteBucket(ctx, "bucket-a"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, ok, _ := f.Index.GetBucket("bucket-a"); ok {
		t.Error("expected bucket to be gone")
	}
}

func TestPutObjectRejectsOversizedUpload(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := f.PutObject(ctx, PutObjectRequest{BucketName: "bucket-a", Key: "k", Size: maxObjectSize + 1, Body: bytes.NewReader(nil)})
	if err == nil {
		t.Fatal("expected EntityTooLarge error")
	}
	if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.EntityTooLarge {
		t.Errorf("expected EntityTooLarge, got %v", err)
	}
}

func TestPutObjectComputesETagAndRecordsVersion(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	body := []byte("hello world")
	o, err := f.PutObject(ctx, PutObjectRequest{BucketName: "bucket-a", Key: "k", OwnerUserID: "alice", Size: int64(len(body)), Body: bytes.NewReader(body)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if o.ETag == "" {
		t.Error("expected non-empty ETag")
	}

	result, err := f.GetObject(ctx, "bucket-a", "k", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	defer result.Body.Close()

	got, err := io.ReadAll(result.Body)
	if err != nil {
		t.Fatalf("unexpected read error: %s", err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("expected %q, got %q", body, got)
	}
}

func TestGetObjectRange(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	body := []byte("0123456789")
	if _, err := f.PutObject(ctx, PutObjectRequest{BucketName: "bucket-a", Key: "k", Size: int64(len(body)), Body: bytes.NewReader(body)}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	start, end := int64(2), int64(4)
	result, err := f.GetObject(ctx, "bucket-a", "k", &start, &end)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	defer result.Body.Close()

	got, _ := io.ReadAll(result.Body)
	if string(got) != "234" {
		t.Errorf("expected range \"234\", got %q", got)
	}
}

func TestGetObjectMissingKeyIsNoSuchKey(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := f.GetObject(ctx, "bucket-a", "missing", nil, nil)
	if err == nil {
		t.Fatal("expected NoSuchKey error")
	}
	if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.NoSuchKey {
		t.Errorf("expected NoSuchKey, got %v", err)
	}
}

func TestDeleteObjectThenGetIsNoSuchKey(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := f.PutObject(ctx, PutObjectRequest{BucketName: "bucket-a", Key: "k", Size: 3, Body: bytes.NewReader([]byte("abc"))}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if err := f.DeleteObject(ctx, "bucket-a", "k"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, err := f.GetObject(ctx, "bucket-a", "k", nil, nil); err == nil {
		t.Fatal("expected NoSuchKey after delete")
	}
}

func TestDeleteObjectsBestEffortBatch(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, k := range []string{"a", "b"} {
		if _, err := f.PutObject(ctx, PutObjectRequest{BucketName: "bucket-a", Key: k, Size: 1, Body: bytes.NewReader([]byte("x"))}); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	results, err := f.DeleteObjects(ctx, "bucket-a", []string{"a", "b", "missing-but-still-deleted"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Deleted {
			t.Errorf("expected key %s to be reported deleted", r.Key)
		}
	}
}

func TestCopyObjectDuplicatesBytesUnderNewKey(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "src", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := f.CreateBucket(ctx, "dst", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	body := []byte("copy me")
	if _, err := f.PutObject(ctx, PutObjectRequest{BucketName: "src", Key: "k", OwnerUserID: "alice", Size: int64(len(body)), Body: bytes.NewReader(body)}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, err := f.CopyObject(ctx, "src", "k", "dst", "k2", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	result, err := f.GetObject(ctx, "dst", "k2", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	defer result.Body.Close()

	got, _ := io.ReadAll(result.Body)
	if !bytes.Equal(got, body) {
		t.Errorf("expected %q, got %q", body, got)
	}
}
