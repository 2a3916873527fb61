package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/common"
	"github.com/briarcliff-cloud/s3gateway/filestore"
	"github.com/briarcliff-cloud/s3gateway/filter"
	"github.com/briarcliff-cloud/s3gateway/fullstack"
	"github.com/briarcliff-cloud/s3gateway/identity"
	"github.com/briarcliff-cloud/s3gateway/indexer"
	"github.com/briarcliff-cloud/s3gateway/keycache"
	"github.com/briarcliff-cloud/s3gateway/ratelimit"
	"github.com/briarcliff-cloud/s3gateway/router"
)

const keyCacheRefreshInterval = 10 * time.Second

// sharedLimiterLimit and sharedLimiterWindow bound requests per client
// IP across the whole fleet, distinct from ratelimit.Local's per-process
// token bucket.
const (
	sharedLimiterLimit  = 600
	sharedLimiterWindow = time.Minute
)

type server struct {
	router   *mux.Router
	pipeline filter.Pipeline
	facade   *fullstack.Facade
	region   string
	version  common.Version
}

// NewServer wires the gateway's components per configuration and
// blocks serving HTTP until the listener fails.
func NewServer(config common.Config) error {
	if config.Region == "" {
		return errors.New("'region' cannot be empty in the configuration")
	}
	if config.IAMAddress == "" {
		return errors.New("'iam_address' cannot be empty in the configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	idClient := identity.New(config.IAMAddress)
	cache := keycache.New(idClient, keyCacheRefreshInterval)
	if err := cache.Refresh(ctx); err != nil {
		log.Warnf("initial key cache refresh failed, starting with an empty cache: %s", err)
	}
	go cache.Run(ctx)

	index, err := buildIndexer(config)
	if err != nil {
		return err
	}

	store := buildStore(config)

	facade := fullstack.New(index, store)

	local := ratelimit.NewLocal()
	go local.Run(ctx, time.Minute, 10*time.Minute)

	rt := router.New(config.S3Domains)
	pipeline := filter.NewPipeline(cache, config.Region, time.Now, rt, local, buildSharedLimiter(config), fullstack.IndexBucketStore{Index: index})

	s := &server{
		router:   mux.NewRouter(),
		pipeline: pipeline,
		facade:   facade,
		region:   config.Region,
		version:  config.Version,
	}
	s.routes()

	handler := handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, s.router))
	srv := &http.Server{
		Handler:      handler,
		Addr:         config.ListenAddress,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Infof("starting listener on %s", config.ListenAddress)
	return srv.ListenAndServe()
}

func buildIndexer(config common.Config) (indexer.Indexer, error) {
	switch config.MetaStore {
	case "memory":
		return indexer.NewMemIndexer(config.DefaultBucketQuota), nil
	case "sqlite", "":
		path := config.PostgresDBInfo
		if path == "" {
			path = ":memory:"
		}
		return indexer.NewSQLIndexer(path, config.DefaultBucketQuota)
	default:
		return nil, errors.New("unsupported meta_store: " + config.MetaStore)
	}
}

// buildSharedLimiter wires a distributed rate limiter backed by Redis
// when config.RedisAddress is set, so multiple gateway instances share
// one counter per client IP. Without it, only each process's local
// bucket applies.
func buildSharedLimiter(config common.Config) filter.SharedLimiter {
	if config.RedisAddress == "" {
		return nil
	}
	return ratelimit.NewShared(ratelimit.NewRedisCounter(config.RedisAddress), sharedLimiterLimit, sharedLimiterWindow)
}

func buildStore(config common.Config) filestore.Store {
	if len(config.Storage) == 0 {
		log.Warn("no storage configuration provided, using in-memory file storage (development only)")
		return filestore.NewMemoryBackend()
	}

	backend, err := filestore.NewS3Backend(config.Storage)
	if err != nil {
		log.Errorf("failed to build S3 storage backend, falling back to in-memory storage: %s", err)
		return filestore.NewMemoryBackend()
	}
	return backend
}

// LogWriter logs a message if the underlying ResponseWriter fails to
// write, matching the teacher's recovery-safe writer idiom.
type LogWriter struct {
	http.ResponseWriter
}

// Write implements io.Writer, logging failures instead of silently
// dropping them.
func (w LogWriter) Write(p []byte) (n int, err error) {
	n, err = w.ResponseWriter.Write(p)
	if err != nil {
		log.Errorf("write failed: %v", err)
	}
	return
}
