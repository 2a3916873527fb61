package sigv4

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// VerifyPresigned validates a presigned V4 URL: X-Amz-Credential,
// X-Amz-Date, X-Amz-Expires, X-Amz-SignedHeaders and X-Amz-Signature
// query parameters stand in for the Authorization header, and the
// canonical request is built with the signature query parameter
// stripped and the rest of the query string included.
func VerifyPresigned(req *http.Request, lookup CredentialSource, region string, now time.Time) (Credential, DiagnosticInfo, error) {
	q := req.URL.Query()

	credential := q.Get("X-Amz-Credential")
	if credential == "" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.MissingCredTag, "missing X-Amz-Credential", nil)
	}
	signature := q.Get("X-Amz-Signature")
	if signature == "" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.MissingSignTag, "missing X-Amz-Signature", nil)
	}
	signedHeadersParam := q.Get("X-Amz-SignedHeaders")
	if signedHeadersParam == "" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.MissingSignHeadersTag, "missing X-Amz-SignedHeaders", nil)
	}
	dateParam := q.Get("X-Amz-Date")
	if dateParam == "" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.MissingDateHeader, "missing X-Amz-Date", nil)
	}
	expiresParam := q.Get("X-Amz-Expires")
	if expiresParam == "" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.MalformedExpires, "missing X-Amz-Expires", nil)
	}

	date, err := time.Parse(amzDateFormat, dateParam)
	if err != nil {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.MalformedDate, "X-Amz-Date must be YYYYMMDD'T'HHMMSS'Z'", nil)
	}

	expires, err := strconv.Atoi(expiresParam)
	if err != nil || expires < 0 {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.MalformedExpires, "X-Amz-Expires must be a non-negative integer", nil)
	}
	if now.After(date.Add(time.Duration(expires) * time.Second)) {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.ExpiredPresignRequest, "presigned request has expired", nil)
	}

	segments := splitCredentialScope(credential)
	if segments == nil {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.CredMalformed, "credential scope must have 5 segments", nil)
	}
	accessKey, _, scopeRegion, service, reqType := segments[0], segments[1], segments[2], segments[3], segments[4]
	if service != "s3" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.InvalidService, "credential scope service must be s3", nil)
	}
	if reqType != "aws4_request" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.InvalidRequestVersion, "credential scope terminator must be aws4_request", nil)
	}
	if scopeRegion == "" {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.InvalidRegion, "credential scope region must not be empty", nil)
	}

	cred, ok := lookup.Lookup(accessKey)
	if !ok {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.InvalidAccessKeyID, "the access key id you provided does not exist", nil)
	}

	signedHeaders := splitSemicolon(signedHeadersParam)
	if !containsHeader(signedHeaders, "host") {
		return Credential{}, DiagnosticInfo{}, apierror.New(apierror.SignatureDoesNotMatch, "host must be a signed header", nil)
	}

	strippedQuery := withoutSignature(req.URL.RawQuery)

	headers := req.Header.Clone()
	if headers.Get("Host") == "" {
		headers.Set("Host", req.Host)
	}

	payload := unsignedPayloadSentinel
	if h := headers.Get("x-amz-content-sha256"); h != "" {
		payload = h
	}

	canonicalRequest := CanonicalRequest(req.Method, req.URL.Path, strippedQuery, headers, signedHeaders, payload)
	stringToSign := StringToSign(date, region, canonicalRequest)
	signingKey := SigningKey(cred.SecretKey, date, region)
	computed := Signature(signingKey, stringToSign)

	diag := DiagnosticInfo{
		CanonicalRequest:  canonicalRequest,
		StringToSign:      stringToSign,
		ComputedSignature: computed,
		PresentSignature:  signature,
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(signature)) != 1 {
		return Credential{}, diag, apierror.New(apierror.SignatureDoesNotMatch, "the request signature does not match the one computed", nil)
	}

	return cred, diag, nil
}

func splitCredentialScope(credential string) []string {
	segments := strings.Split(credential, "/")
	if len(segments) != 5 {
		return nil
	}
	return segments
}

func splitSemicolon(s string) []string {
	out := strings.Split(s, ";")
	for i := range out {
		out[i] = strings.ToLower(out[i])
	}
	return out
}

// withoutSignature removes the X-Amz-Signature pair from a raw query
// string, preserving the rest (still percent-encoded as received) for
// canonicalization.
func withoutSignature(rawQuery string) string {
	pairs := strings.Split(rawQuery, "&")
	kept := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key := pair
		if idx := strings.IndexByte(pair, '='); idx >= 0 {
			key = pair[:idx]
		}
		if decodedKey, err := url.QueryUnescape(key); err == nil {
			key = decodedKey
		}
		if key == "X-Amz-Signature" {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}
