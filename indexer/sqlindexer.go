package indexer

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	_ "modernc.org/sqlite"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

const schema = `
CREATE TABLE IF NOT EXISTS buckets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	owner_user_id TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS quotas (
	user_id TEXT PRIMARY KEY,
	max_buckets INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS objects (
	bucket_id TEXT NOT NULL,
	key TEXT NOT NULL,
	version_id TEXT NOT NULL,
	owner_user_id TEXT NOT NULL,
	is_latest INTEGER NOT NULL,
	is_delete_marker INTEGER NOT NULL,
	size INTEGER NOT NULL,
	etag TEXT NOT NULL,
	content_type TEXT NOT NULL,
	last_modified DATETIME NOT NULL,
	PRIMARY KEY (bucket_id, key, version_id)
);

CREATE TABLE IF NOT EXISTS multipart_uploads (
	upload_id TEXT PRIMARY KEY,
	bucket_id TEXT NOT NULL,
	key TEXT NOT NULL,
	owner_user_id TEXT NOT NULL,
	initiated DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS parts (
	upload_id TEXT NOT NULL,
	part_number INTEGER NOT NULL,
	size INTEGER NOT NULL,
	etag TEXT NOT NULL,
	PRIMARY KEY (upload_id, part_number)
);
`

// SQLIndexer is a modernc.org/sqlite-backed Indexer, the concrete
// implementation the gateway runs against when no other metadata
// database is configured.
type SQLIndexer struct {
	db           *sql.DB
	defaultQuota int
}

// NewSQLIndexer opens (creating if necessary) a sqlite database at
// path and applies the schema.
func NewSQLIndexer(path string, defaultQuota int) (*SQLIndexer, error) {
	log.Infof("opening sqlite indexer at %s", path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apierror.New(apierror.InternalError, "failed to open indexer database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, apierror.New(apierror.InternalError, "failed to apply indexer schema", err)
	}

	return &SQLIndexer{db: db, defaultQuota: defaultQuota}, nil
}

func (s *SQLIndexer) GetBucket(name string) (Bucket, bool, error) {
	var b Bucket
	var created time.Time
	err := s.db.QueryRow(
		`SELECT id, name, owner_user_id, created_at FROM buckets WHERE name = ?`, name,
	).Scan(&b.ID, &b.Name, &b.OwnerUserID, &created)
	if err == sql.ErrNoRows {
		return Bucket{}, false, nil
	}
	if err != nil {
		return Bucket{}, false, apierror.New(apierror.InternalError, "failed to get bucket "+name, err)
	}
	b.CreatedAt = created
	return b, true, nil
}

func (s *SQLIndexer) ListBuckets(ownerUserID string) ([]Bucket, error) {
	rows, err := s.db.Query(
		`SELECT id, name, owner_user_id, created_at FROM buckets WHERE owner_user_id = ? ORDER BY name`, ownerUserID,
	)
	if err != nil {
		return nil, apierror.New(apierror.InternalError, "failed to list buckets", err)
	}
	defer rows.Close()

	var out []Bucket
	for rows.Next() {
		var b Bucket
		var created time.Time
		if err := rows.Scan(&b.ID, &b.Name, &b.OwnerUserID, &created); err != nil {
			return nil, apierror.New(apierror.InternalError, "failed to scan bucket row", err)
		}
		b.CreatedAt = created
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *SQLIndexer) GetBucketQuota(ownerUserID string) (int, error) {
	var max int
	err := s.db.QueryRow(`SELECT max_buckets FROM quotas WHERE user_id = ?`, ownerUserID).Scan(&max)
	if err == sql.ErrNoRows {
		return s.defaultQuota, nil
	}
	if err != nil {
		return 0, apierror.New(apierror.InternalError, "failed to get bucket quota", err)
	}
	return max, nil
}

func (s *SQLIndexer) CreateBucket(b Bucket) error {
	if b.ID == "" {
		b.ID = uuid.Must(uuid.NewV7()).String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO buckets (id, name, owner_user_id, created_at) VALUES (?, ?, ?, ?)`,
		b.ID, b.Name, b.OwnerUserID, b.CreatedAt,
	)
	if err != nil {
		return apierror.New(apierror.BucketAlreadyExists, "the requested bucket name is not available", err)
	}
	return nil
}

func (s *SQLIndexer) DeleteBucket(bucketID string) error {
	res, err := s.db.Exec(`DELETE FROM buckets WHERE id = ?`, bucketID)
	if err != nil {
		return apierror.New(apierror.InternalError, "failed to delete bucket", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apierror.New(apierror.NoSuchBucket, "the specified bucket does not exist", nil)
	}
	return nil
}

func (s *SQLIndexer) GetObject(bucketID, key string) (Object, bool, error) {
	var o Object
	var lastModified time.Time
	var isLatest, isDeleteMarker int
	err := s.db.QueryRow(
		`SELECT bucket_id, key, version_id, owner_user_id, is_latest, is_delete_marker, size, etag, content_type, last_modified
		 FROM objects WHERE bucket_id = ? AND key = ? AND is_latest = 1`,
		bucketID, key,
	).Scan(&o.BucketID, &o.Key, &o.VersionID, &o.OwnerUserID, &isLatest, &isDeleteMarker, &o.Size, &o.ETag, &o.ContentType, &lastModified)
	if err == sql.ErrNoRows {
		return Object{}, false, nil
	}
	if err != nil {
		return Object{}, false, apierror.New(apierror.InternalError, "failed to get object", err)
	}
	o.IsLatest = isLatest == 1
	o.IsDeleteMarker = isDeleteMarker == 1
	o.LastModified = lastModified
	return o, true, nil
}

func (s *SQLIndexer) ListObjects(bucketID, prefix, marker, delimiter string, limit int) ([]Object, string, error) {
	query := `SELECT bucket_id, key, version_id, owner_user_id, is_latest, is_delete_marker, size, etag, content_type, last_modified
		FROM objects
		WHERE bucket_id = ? AND is_latest = 1 AND is_delete_marker = 0 AND key LIKE ? AND key > ?
		ORDER BY key`
	args := []any{bucketID, prefix + "%", marker}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit+1)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, "", apierror.New(apierror.InternalError, "failed to list objects", err)
	}
	defer rows.Close()

	var out []Object
	for rows.Next() {
		var o Object
		var lastModified time.Time
		var isLatest, isDeleteMarker int
		if err := rows.Scan(&o.BucketID, &o.Key, &o.VersionID, &o.OwnerUserID, &isLatest, &isDeleteMarker, &o.Size, &o.ETag, &o.ContentType, &lastModified); err != nil {
			return nil, "", apierror.New(apierror.InternalError, "failed to scan object row", err)
		}
		o.IsLatest = isLatest == 1
		o.IsDeleteMarker = isDeleteMarker == 1
		o.LastModified = lastModified
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, "", apierror.New(apierror.InternalError, "failed to list objects", err)
	}

	if limit > 0 && len(out) > limit {
		return out[:limit], out[limit-1].Key, nil
	}
	return out, "", nil
}

func (s *SQLIndexer) ListObjectVersions(bucketID, key string) ([]Object, error) {
	rows, err := s.db.Query(
		`SELECT bucket_id, key, version_id, owner_user_id, is_latest, is_delete_marker, size, etag, content_type, last_modified
		 FROM objects WHERE bucket_id = ? AND key = ? ORDER BY last_modified DESC`,
		bucketID, key,
	)
	if err != nil {
		return nil, apierror.New(apierror.InternalError, "failed to list object versions", err)
	}
	defer rows.Close()

	var out []Object
	for rows.Next() {
		var o Object
		var lastModified time.Time
		var isLatest, isDeleteMarker int
		if err := rows.Scan(&o.BucketID, &o.Key, &o.VersionID, &o.OwnerUserID, &isLatest, &isDeleteMarker, &o.Size, &o.ETag, &o.ContentType, &lastModified); err != nil {
			return nil, apierror.New(apierror.InternalError, "failed to scan object version row", err)
		}
		o.IsLatest = isLatest == 1
		o.IsDeleteMarker = isDeleteMarker == 1
		o.LastModified = lastModified
		out = append(out, o)
	}
	return out, rows.Err()
}

// PutObject inserts a new version and flips the prior is-latest row to
// false atomically, inside one transaction.
func (s *SQLIndexer) PutObject(o Object) error {
	tx, err := s.db.Begin()
	if err != nil {
		return apierror.New(apierror.InternalError, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE objects SET is_latest = 0 WHERE bucket_id = ? AND key = ? AND is_latest = 1`,
		o.BucketID, o.Key,
	); err != nil {
		return apierror.New(apierror.InternalError, "failed to flip prior object version", err)
	}

	if o.VersionID == "" {
		o.VersionID = uuid.Must(uuid.NewV7()).String()
	}
	if o.LastModified.IsZero() {
		o.LastModified = time.Now().UTC()
	}

	if _, err := tx.Exec(
		`INSERT INTO objects (bucket_id, key, version_id, owner_user_id, is_latest, is_delete_marker, size, etag, content_type, last_modified)
		 VALUES (?, ?, ?, ?, 1, 0, ?, ?, ?, ?)`,
		o.BucketID, o.Key, o.VersionID, o.OwnerUserID, o.Size, o.ETag, o.ContentType, o.LastModified,
	); err != nil {
		return apierror.New(apierror.InternalError, "failed to insert object version", err)
	}

	if err := tx.Commit(); err != nil {
		return apierror.New(apierror.InternalError, "failed to commit object put", err)
	}
	return nil
}

func (s *SQLIndexer) DeleteObject(bucketID, key string) (Object, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Object{}, apierror.New(apierror.InternalError, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE objects SET is_latest = 0 WHERE bucket_id = ? AND key = ? AND is_latest = 1`,
		bucketID, key,
	); err != nil {
		return Object{}, apierror.New(apierror.InternalError, "failed to flip prior object version", err)
	}

	marker := Object{
		BucketID:       bucketID,
		Key:            key,
		VersionID:      uuid.Must(uuid.NewV7()).String(),
		IsLatest:       true,
		IsDeleteMarker: true,
		LastModified:   time.Now().UTC(),
	}

	if _, err := tx.Exec(
		`INSERT INTO objects (bucket_id, key, version_id, owner_user_id, is_latest, is_delete_marker, size, etag, content_type, last_modified)
		 VALUES (?, ?, ?, '', 1, 1, 0, '', '', ?)`,
		marker.BucketID, marker.Key, marker.VersionID, marker.LastModified,
	); err != nil {
		return Object{}, apierror.New(apierror.InternalError, "failed to insert delete marker", err)
	}

	if err := tx.Commit(); err != nil {
		return Object{}, apierror.New(apierror.InternalError, "failed to commit object delete", err)
	}
	return marker, nil
}

func (s *SQLIndexer) DeleteObjects(bucketID string, keys []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(keys))
	for _, key := range keys {
		if _, err := s.DeleteObject(bucketID, key); err != nil {
			results = append(results, DeleteResult{Key: key, Deleted: false, Err: err})
			continue
		}
		results = append(results, DeleteResult{Key: key, Deleted: true})
	}
	return results
}

func (s *SQLIndexer) CountObjects(bucketID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM objects WHERE bucket_id = ? AND is_latest = 1 AND is_delete_marker = 0`, bucketID,
	).Scan(&count)
	if err != nil {
		return 0, apierror.New(apierror.InternalError, "failed to count objects", err)
	}
	return count, nil
}

func (s *SQLIndexer) CreateMultipartUpload(bucketID, key, ownerUserID string) (MultipartUpload, error) {
	u := MultipartUpload{
		UploadID:  uuid.Must(uuid.NewV7()).String(),
		BucketID:  bucketID,
		Key:       key,
		Initiated: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO multipart_uploads (upload_id, bucket_id, key, owner_user_id, initiated) VALUES (?, ?, ?, ?, ?)`,
		u.UploadID, u.BucketID, u.Key, ownerUserID, u.Initiated,
	)
	if err != nil {
		return MultipartUpload{}, apierror.New(apierror.InternalError, "failed to create multipart upload", err)
	}
	return u, nil
}

func (s *SQLIndexer) UploadPart(uploadID string, partNumber int, size int64, etag string) error {
	_, err := s.db.Exec(
		`INSERT INTO parts (upload_id, part_number, size, etag) VALUES (?, ?, ?, ?)
		 ON CONFLICT(upload_id, part_number) DO UPDATE SET size = excluded.size, etag = excluded.etag`,
		uploadID, partNumber, size, etag,
	)
	if err != nil {
		return apierror.New(apierror.InternalError, "failed to record uploaded part", err)
	}
	return nil
}

func (s *SQLIndexer) ListParts(uploadID string) ([]Part, error) {
	if !s.uploadExists(uploadID) {
		return nil, apierror.New(apierror.NoSuchUpload, "the specified upload does not exist", nil)
	}

	rows, err := s.db.Query(
		`SELECT upload_id, part_number, size, etag FROM parts WHERE upload_id = ? ORDER BY part_number`, uploadID,
	)
	if err != nil {
		return nil, apierror.New(apierror.InternalError, "failed to list parts", err)
	}
	defer rows.Close()

	var out []Part
	for rows.Next() {
		var p Part
		if err := rows.Scan(&p.UploadID, &p.PartNumber, &p.Size, &p.ETag); err != nil {
			return nil, apierror.New(apierror.InternalError, "failed to scan part row", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLIndexer) ListMultipartUploads(bucketID string) ([]MultipartUpload, error) {
	rows, err := s.db.Query(
		`SELECT upload_id, bucket_id, key, initiated FROM multipart_uploads WHERE bucket_id = ? ORDER BY key`, bucketID,
	)
	if err != nil {
		return nil, apierror.New(apierror.InternalError, "failed to list multipart uploads", err)
	}
	defer rows.Close()

	var out []MultipartUpload
	for rows.Next() {
		var u MultipartUpload
		if err := rows.Scan(&u.UploadID, &u.BucketID, &u.Key, &u.Initiated); err != nil {
			return nil, apierror.New(apierror.InternalError, "failed to scan multipart upload row", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *SQLIndexer) AbortMultipartUpload(uploadID string) error {
	if !s.uploadExists(uploadID) {
		return apierror.New(apierror.NoSuchUpload, "the specified upload does not exist", nil)
	}

	if _, err := s.db.Exec(`DELETE FROM parts WHERE upload_id = ?`, uploadID); err != nil {
		return apierror.New(apierror.InternalError, "failed to delete parts", err)
	}
	if _, err := s.db.Exec(`DELETE FROM multipart_uploads WHERE upload_id = ?`, uploadID); err != nil {
		return apierror.New(apierror.InternalError, "failed to delete multipart upload", err)
	}
	return nil
}

func (s *SQLIndexer) CompleteMultipartUpload(uploadID string) (Object, error) {
	var bucketID, key string
	err := s.db.QueryRow(
		`SELECT bucket_id, key FROM multipart_uploads WHERE upload_id = ?`, uploadID,
	).Scan(&bucketID, &key)
	if err == sql.ErrNoRows {
		return Object{}, apierror.New(apierror.NoSuchUpload, "the specified upload does not exist", nil)
	}
	if err != nil {
		return Object{}, apierror.New(apierror.InternalError, "failed to load multipart upload", err)
	}

	if err := s.AbortMultipartUpload(uploadID); err != nil {
		return Object{}, err
	}

	return Object{BucketID: bucketID, Key: key}, nil
}

func (s *SQLIndexer) uploadExists(uploadID string) bool {
	var id string
	err := s.db.QueryRow(`SELECT upload_id FROM multipart_uploads WHERE upload_id = ?`, uploadID).Scan(&id)
	return err == nil
}
