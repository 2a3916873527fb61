package router

import "strings"

// Scope is where in the S3 resource hierarchy a request lands.
type Scope string

const (
	ScopeRoot   Scope = "root"
	ScopeBucket Scope = "bucket"
	ScopeKey    Scope = "key"
)

// ResolveScope derives scope, bucket name, and object key from a
// request's host and path, per spec: virtual-host addressing when the
// host matches one of the configured domains with a bucket label
// prepended, path-style otherwise.
func ResolveScope(domains []string, host, path string) (scope Scope, bucket, key string) {
	hostOnly := host
	if idx := strings.IndexByte(hostOnly, ':'); idx >= 0 {
		hostOnly = hostOnly[:idx]
	}

	for _, domain := range domains {
		suffix := "." + domain
		if strings.HasSuffix(hostOnly, suffix) {
			label := strings.TrimSuffix(hostOnly, suffix)
			if label == "" {
				break
			}
			bucket = label
			key = strings.TrimPrefix(path, "/")
			if key == "" {
				return ScopeBucket, bucket, ""
			}
			return ScopeKey, bucket, key
		}
	}

	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return ScopeRoot, "", ""
	}

	idx := strings.IndexByte(trimmed, '/')
	if idx < 0 {
		return ScopeBucket, trimmed, ""
	}

	bucket = trimmed[:idx]
	key = trimmed[idx+1:]
	if key == "" {
		return ScopeBucket, bucket, ""
	}
	return ScopeKey, bucket, key
}
