package sigv4

import (
	"strings"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// ParsedAuth is the decoded form of an AWS4-HMAC-SHA256 Authorization
// header: credential scope broken into its parts, the signed-headers
// list, and the presented signature.
type ParsedAuth struct {
	AccessKey     string
	Date          string // YYYYMMDD
	Region        string
	SignedHeaders []string
	Signature     string
}

// ParseAuthorizationHeader parses the header form described in spec:
// "AWS4-HMAC-SHA256 Credential=.../SignedHeaders=...,Signature=...".
func ParseAuthorizationHeader(header string) (ParsedAuth, error) {
	const prefix = algorithm + " "
	if !strings.HasPrefix(header, prefix) {
		return ParsedAuth{}, apierror.New(apierror.AuthorizationHeaderMalformed, "authorization header must begin with "+algorithm, nil)
	}

	rest := strings.TrimPrefix(header, prefix)
	fields := strings.Split(rest, ", ")

	values := map[string]string{}
	for _, field := range fields {
		idx := strings.IndexByte(field, '=')
		if idx < 0 {
			return ParsedAuth{}, apierror.New(apierror.CredMalformed, "malformed authorization field: "+field, nil)
		}
		values[field[:idx]] = field[idx+1:]
	}

	credential, ok := values["Credential"]
	if !ok {
		return ParsedAuth{}, apierror.New(apierror.CredMalformed, "missing Credential", nil)
	}
	signedHeaders, ok := values["SignedHeaders"]
	if !ok {
		return ParsedAuth{}, apierror.New(apierror.MissingSignHeadersTag, "missing SignedHeaders", nil)
	}
	signature, ok := values["Signature"]
	if !ok {
		return ParsedAuth{}, apierror.New(apierror.MissingSignTag, "missing Signature", nil)
	}

	segments := strings.Split(credential, "/")
	if len(segments) != 5 {
		return ParsedAuth{}, apierror.New(apierror.CredMalformed, "credential scope must have 5 segments", nil)
	}

	accessKey, date, region, service, request := segments[0], segments[1], segments[2], segments[3], segments[4]

	if request != "aws4_request" {
		return ParsedAuth{}, apierror.New(apierror.InvalidRequestVersion, "credential scope terminator must be aws4_request", nil)
	}
	if service != "s3" {
		return ParsedAuth{}, apierror.New(apierror.InvalidService, "credential scope service must be s3", nil)
	}
	if region == "" {
		return ParsedAuth{}, apierror.New(apierror.InvalidRegion, "credential scope region must not be empty", nil)
	}
	if !isDateStamp(date) {
		return ParsedAuth{}, apierror.New(apierror.MalformedDate, "credential scope date must be YYYYMMDD", nil)
	}
	if accessKey == "" {
		return ParsedAuth{}, apierror.New(apierror.CredMalformed, "credential scope access key must not be empty", nil)
	}

	headerNames := strings.Split(signedHeaders, ";")
	for i := range headerNames {
		headerNames[i] = strings.ToLower(headerNames[i])
	}

	return ParsedAuth{
		AccessKey:     accessKey,
		Date:          date,
		Region:        region,
		SignedHeaders: headerNames,
		Signature:     signature,
	}, nil
}

func isDateStamp(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < 8; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func containsHeader(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
