package common

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config is the gateway's startup configuration, loaded once from a
// JSON file and never reloaded.
type Config struct {
	ListenAddress  string   `json:"bind_api_address"`
	Region         string   `json:"region"`
	S3Domains      []string `json:"s3domain"`
	IAMAddress     string   `json:"iam_address"`
	MetaStore      string   `json:"meta_store"`
	PostgresDBInfo string   `json:"postgresdb_info"`
	RedisAddress   string   `json:"redis_address"`
	LogLevel       string   `json:"log_level"`
	Debug          bool     `json:"debug"`

	// Storage configures the byte-storage backend (akid/secret/token/
	// region/endpoint for the real S3-compatible store this gateway
	// fronts). Empty uses the in-memory backend, suitable for local
	// development only.
	Storage map[string]interface{} `json:"storage"`

	// DefaultBucketQuota is the per-user bucket count ceiling applied
	// when the indexer has no explicit override for a user.
	DefaultBucketQuota int `json:"default_bucket_quota"`

	Version Version `json:"-"`
}

// Version carries around the API version information.
type Version struct {
	Version           string
	VersionPrerelease string
	BuildStamp        string
	GitHash           string
}

// ReadConfig decodes the configuration from an io.Reader and applies
// any environment overrides for postgresdb_info and identity
// credentials. Env overrides take precedence over file values.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	log.Infoln("Reading configuration")
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return c, errors.Wrap(err, "unable to decode JSON message")
	}

	if v := os.Getenv("S3GATEWAY_POSTGRESDB_INFO"); v != "" {
		c.PostgresDBInfo = v
	}
	if v := os.Getenv("S3GATEWAY_IAM_ADDRESS"); v != "" {
		c.IAMAddress = v
	}

	if c.ListenAddress == "" {
		c.ListenAddress = ":8080"
	}
	if c.MetaStore == "" {
		c.MetaStore = "sqlite"
	}
	if c.DefaultBucketQuota == 0 {
		c.DefaultBucketQuota = 100
	}

	return c, nil
}
