// Package sigv4 verifies AWS Signature Version 4 authenticated
// requests: parsing the Authorization header or presigned query
// string, rebuilding the canonical request and string-to-sign, and
// comparing the computed signature against the one presented.
package sigv4

import (
	"net/http"
	"strings"
	"time"
)

const algorithm = "AWS4-HMAC-SHA256"

// unsignedPayloadSHA256 is the SHA-256 hex digest of the empty string,
// used as the payload hash when x-amz-content-sha256 is absent and the
// body is empty.
const unsignedPayloadSHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// unsignedPayloadSentinel marks a request whose body was not hashed
// for signing.
const unsignedPayloadSentinel = "UNSIGNED-PAYLOAD"

const streamingPayloadSentinel = "STREAMING-AWS4-HMAC-SHA256-PAYLOAD"

// AuthType classifies how a request claims to be authenticated, before
// any cryptographic verification happens.
type AuthType int

const (
	// Anonymous requests carry no Authorization header.
	Anonymous AuthType = iota
	// SignedV4 requests carry a header-based AWS4-HMAC-SHA256 Authorization.
	SignedV4
	// PresignedV4 requests carry X-Amz-Credential in the query string.
	PresignedV4
	// StreamingSigned requests set x-amz-content-sha256 to the
	// streaming sentinel on a PUT.
	StreamingSigned
	// RejectedV2 is the legacy "AWS <key>:<sig>" scheme; always denied.
	RejectedV2
	// RejectedPostPolicy is browser-based POST policy auth; always denied.
	RejectedPostPolicy
)

// Classify inspects a request's headers and query string to determine
// its claimed auth type. It performs no verification.
func Classify(req *http.Request) AuthType {
	if req.Method == http.MethodPost {
		ct := req.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "multipart/form-data") {
			return RejectedPostPolicy
		}
	}

	if req.URL.Query().Get("X-Amz-Credential") != "" {
		return PresignedV4
	}

	auth := req.Header.Get("Authorization")
	if auth == "" {
		return Anonymous
	}

	if strings.HasPrefix(auth, algorithm+" ") {
		if req.Method == http.MethodPut && req.Header.Get("x-amz-content-sha256") == streamingPayloadSentinel {
			return StreamingSigned
		}
		return SignedV4
	}

	if strings.HasPrefix(auth, "AWS ") {
		return RejectedV2
	}

	return RejectedV2
}

// Credential is the (access key, secret key, owning user) triple the
// key cache resolves an access key to.
type Credential struct {
	AccessKey string
	SecretKey string
	UserID    string
}

// CredentialSource looks up the secret for an access key. The key
// cache (keycache package) is the production implementation.
type CredentialSource interface {
	Lookup(accessKey string) (Credential, bool)
}

// clockSkew is the maximum allowed difference between request time and
// wall clock before RequestTimeTooSkewed fires.
const clockSkew = 15 * time.Minute
