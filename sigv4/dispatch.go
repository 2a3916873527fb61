package sigv4

import (
	"net/http"
	"time"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// VerifyRequest classifies the request's auth type and dispatches to
// the matching verifier. Anonymous requests succeed with a zero
// Credential (callers decide whether anonymous access is permitted for
// the resolved action). Streaming-signed payloads and the legacy V2 /
// POST-policy schemes are rejected per the decisions in SPEC_FULL.
func VerifyRequest(req *http.Request, body []byte, lookup CredentialSource, region string, now time.Time) (Credential, AuthType, DiagnosticInfo, error) {
	authType := Classify(req)

	switch authType {
	case Anonymous:
		return Credential{}, authType, DiagnosticInfo{}, nil
	case SignedV4:
		cred, diag, err := Verify(req, body, lookup, region, now)
		return cred, authType, diag, err
	case PresignedV4:
		cred, diag, err := VerifyPresigned(req, lookup, region, now)
		return cred, authType, diag, err
	case StreamingSigned:
		return Credential{}, authType, DiagnosticInfo{}, apierror.New(apierror.NotImplemented, "streaming signed payloads are not supported", nil)
	case RejectedV2, RejectedPostPolicy:
		return Credential{}, authType, DiagnosticInfo{}, apierror.New(apierror.AccessDenied, "signature version not supported", nil)
	default:
		return Credential{}, authType, DiagnosticInfo{}, apierror.New(apierror.AccessDenied, "unrecognized authentication scheme", nil)
	}
}
