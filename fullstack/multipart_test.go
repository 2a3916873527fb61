package fullstack

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"testing"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/filestore"
	"github.com/briarcliff-cloud/s3gateway/indexer"
)

func TestMultipartUploadLifecycleAssemblesBodyAndETag(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	upload, err := f.CreateMultipartUpload(ctx, "bucket-a", "big-object", "alice", "application/octet-stream")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	part1 := bytes.Repeat([]byte("a"), minPartSize)
	part2 := []byte("tail bytes")

	etag1, err := f.UploadPart(ctx, "bucket-a", "big-object", upload.UploadID, 1, int64(len(part1)), bytes.NewReader(part1))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	etag2, err := f.UploadPart(ctx, "bucket-a", "big-object", upload.UploadID, 2, int64(len(part2)), bytes.NewReader(part2))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	parts, err := f.ListParts(ctx, upload.UploadID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}

	o, err := f.CompleteMultipartUpload(ctx, "bucket-a", "big-object", upload.UploadID, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	raw1, _ := hex.DecodeString(etag1)
	raw2, _ := hex.DecodeString(etag2)
	sum := md5.Sum(append(append([]byte{}, raw1...), raw2...))
	wantETag := fmt.Sprintf("%s-2", hex.EncodeToString(sum[:]))

	if o.ETag != wantETag {
		t.Errorf("expected ETag %s, got %s", wantETag, o.ETag)
	}
	if o.Size != int64(len(part1)+len(part2)) {
		t.Errorf("expected size %d, got %d", len(part1)+len(part2), o.Size)
	}

	result, err := f.GetObject(ctx, "bucket-a", "big-object", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	defer result.Body.Close()

	got, _ := io.ReadAll(result.Body)
	want := append(append([]byte{}, part1...), part2...)
	if !bytes.Equal(got, want) {
		t.Error("assembled object body does not match concatenated parts")
	}
}

func TestUploadPartRejectsOutOfRangePartNumber(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	upload, err := f.CreateMultipartUpload(ctx, "bucket-a", "k", "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err = f.UploadPart(ctx, "bucket-a", "k", upload.UploadID, 0, 1, bytes.NewReader([]byte("x")))
	if err == nil {
		t.Fatal("expected InvalidArgument error")
	}
	if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}

	_, err = f.UploadPart(ctx, "bucket-a", "k", upload.UploadID, 10001, 1, bytes.NewReader([]byte("x")))
	if err == nil {
		t.Fatal("expected InvalidArgument error")
	}
}

func TestCompleteMultipartUploadRejectsNonFinalPartBelowMinimumSize(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	upload, err := f.CreateMultipartUpload(ctx, "bucket-a", "k", "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, err := f.UploadPart(ctx, "bucket-a", "k", upload.UploadID, 1, 3, bytes.NewReader([]byte("abc"))); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := f.UploadPart(ctx, "bucket-a", "k", upload.UploadID, 2, 3, bytes.NewReader([]byte("def"))); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err = f.CompleteMultipartUpload(ctx, "bucket-a", "k", upload.UploadID, "alice")
	if err == nil {
		t.Fatal("expected EntityTooSmall error")
	}
	if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.EntityTooSmall {
		t.Errorf("expected EntityTooSmall, got %v", err)
	}
}

func TestCompleteMultipartUploadRequiresAtLeastOnePart(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	upload, err := f.CreateMultipartUpload(ctx, "bucket-a", "k", "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err = f.CompleteMultipartUpload(ctx, "bucket-a", "k", upload.UploadID, "alice")
	if err == nil {
		t.Fatal("expected InvalidPart error")
	}
	if aerr, ok := err.(apierror.Error); !ok || aerr.Code != apierror.InvalidPart {
		t.Errorf("expected InvalidPart, got %v", err)
	}
}

func TestAbortMultipartUploadRemovesPartBytes(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	upload, err := f.CreateMultipartUpload(ctx, "bucket-a", "k", "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := f.UploadPart(ctx, "bucket-a", "k", upload.UploadID, 1, 3, bytes.NewReader([]byte("abc"))); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if err := f.AbortMultipartUpload(ctx, "bucket-a", "k", upload.UploadID); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, err := f.ListParts(ctx, upload.UploadID); err == nil {
		t.Fatal("expected NoSuchUpload after abort")
	}
	if _, err := f.Store.GetObject(ctx, "bucket-a", partStorageKey("k", upload.UploadID, 1)); err == nil {
		t.Error("expected part bytes to be removed from storage after abort")
	}
}

func TestAssembledPartReaderFailsClosedOnMissingPartBytes(t *testing.T) {
	index := indexer.NewMemIndexer(100)
	store := filestore.NewMemoryBackend()
	f := New(index, store)
	ctx := context.Background()

	if _, err := f.CreateBucket(ctx, "bucket-a", "alice"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	upload, err := f.CreateMultipartUpload(ctx, "bucket-a", "k", "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// Record a part in the indexer whose bytes were never written to
	// storage, simulating a backend losing a part after upload.
	etag := hex.EncodeToString(md5.New().Sum(nil))
	if err := index.UploadPart(upload.UploadID, 1, minPartSize, etag); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err = f.CompleteMultipartUpload(ctx, "bucket-a", "k", upload.UploadID, "alice")
	if err == nil {
		t.Fatal("expected an error when a part's bytes are missing from storage")
	}

	// the upload's bookkeeping must survive the failed completion so a
	// retry after re-uploading the missing part can still succeed.
	if _, lerr := f.ListParts(ctx, upload.UploadID); lerr != nil {
		t.Errorf("expected upload to still exist after a failed completion, got %s", lerr)
	}
}
