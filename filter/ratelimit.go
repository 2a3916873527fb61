package filter

import (
	"net"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// Limiter is the local, authoritative per-IP token bucket.
type Limiter interface {
	Allow(clientIP string) bool
}

// SharedLimiter is the optional distributed counter. Its own
// connectivity failures (err != nil) must never fail the request;
// only a clean deny (allowed=false, err=nil) counts.
type SharedLimiter interface {
	Allow(clientIP string) (allowed bool, err error)
}

// RateLimit resolves the client IP and checks it against the local
// limiter and, if configured, the shared one.
func RateLimit(local Limiter, shared SharedLimiter) Filter {
	return func(req *http.Request, data *S3Data) error {
		ip := clientIP(req)
		if ip == "" {
			return apierror.New(apierror.AccessDenied, "unable to resolve client address", nil)
		}

		if !local.Allow(ip) {
			return apierror.New(apierror.SlowDown, "please reduce your request rate", nil)
		}

		if shared != nil {
			allowed, err := shared.Allow(ip)
			if err != nil {
				log.Debugf("shared rate limiter unreachable, failing open: %s", err)
			} else if !allowed {
				return apierror.New(apierror.SlowDown, "please reduce your request rate", nil)
			}
		}

		return nil
	}
}

func clientIP(req *http.Request) string {
	if v := req.Header.Get("x-forwarded-for"); v != "" {
		parts := strings.Split(v, ",")
		return strings.TrimSpace(parts[0])
	}
	if v := req.Header.Get("x-real-ip"); v != "" {
		return strings.TrimSpace(v)
	}
	if v := req.Header.Get("cf-connecting-ip"); v != "" {
		return strings.TrimSpace(v)
	}
	if req.RemoteAddr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
