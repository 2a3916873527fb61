package sigv4

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// Verify runs the full Signature V4 header-based verification: parse
// the Authorization header, check clock skew, look up the credential,
// rebuild the canonical request and string-to-sign, derive the signing
// key, and constant-time compare signatures. On success it returns the
// resolved Credential.
func Verify(req *http.Request, body []byte, lookup CredentialSource, region string, now time.Time) (Credential, DiagnosticInfo, error) {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.AuthHeaderEmpty, "missing authorization header", nil)
	}

	parsed, err := ParseAuthorizationHeader(authHeader)
	if err != nil {
		return Credential{}, DiagnosticInfo{}, err
	}

	date, err := requestDate(req)
	if err != nil {
		return Credential{}, DiagnosticInfo{}, err
	}

	if skew := now.Sub(date); skew > clockSkew || skew < -clockSkew {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.RequestTimeTooSkewed, "request time too far from server clock", nil)
	}

	cred, ok := lookup.Lookup(parsed.AccessKey)
	if !ok {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.InvalidAccessKeyID, "the access key id you provided does not exist", nil)
	}

	if !containsHeader(parsed.SignedHeaders, "host") {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.SignatureDoesNotMatch, "host must be a signed header", nil)
	}
	if req.Header.Get("Content-MD5") != "" && !containsHeader(parsed.SignedHeaders, "content-md5") {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.SignatureDoesNotMatch, "content-md5 must be a signed header when present", nil)
	}

	headers := req.Header.Clone()
	if headers.Get("Host") == "" {
		headers.Set("Host", req.Host)
	}

	payload := payloadHash(headers, len(body) == 0)
	canonicalRequest := CanonicalRequest(req.Method, req.URL.Path, req.URL.RawQuery, headers, parsed.SignedHeaders, payload)
	stringToSign := StringToSign(date, region, canonicalRequest)
	signingKey := SigningKey(cred.SecretKey, date, region)
	computed := Signature(signingKey, stringToSign)

	diag := DiagnosticInfo{
		CanonicalRequest:  canonicalRequest,
		StringToSign:      stringToSign,
		ComputedSignature: computed,
		PresentSignature:  parsed.Signature,
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(parsed.Signature)) != 1 {
		return Credential{}, diag, apierror.New(apierror.SignatureDoesNotMatch, "the request signature does not match the one computed", nil)
	}

	return cred, diag, nil
}

// DiagnosticInfo carries the verifier's intermediate values for
// debug-level logging on a signature mismatch. It never includes
// secret material.
type DiagnosticInfo struct {
	CanonicalRequest  string
	StringToSign      string
	ComputedSignature string
	PresentSignature  string
}

func requestDate(req *http.Request) (time.Time, error) {
	raw := req.Header.Get("x-amz-date")
	if raw == "" {
		raw = req.Header.Get("Date")
	}
	if raw == "" {
		return time.Time{}, apierror.New(apierror.MissingDateHeader, "request is missing x-amz-date or Date header", nil)
	}

	t, err := time.Parse(amzDateFormat, raw)
	if err != nil {
		return time.Time{}, apierror.New(apierror.MalformedDate, "x-amz-date must be YYYYMMDD'T'HHMMSS'Z'", nil)
	}
	return t, nil
}
