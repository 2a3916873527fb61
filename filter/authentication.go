package filter

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/sigv4"
)

// Authentication runs the Signature V4 verifier and writes the
// resolved credential onto the context. Anonymous requests pass
// through with a zero Credential; callers downstream (action
// dispatch) decide whether the resolved action permits anonymous
// access.
func Authentication(lookup sigv4.CredentialSource, region string, clock func() time.Time) Filter {
	return func(req *http.Request, data *S3Data) error {
		// Verify only ever consults len(body): it picks the
		// unsigned-payload fallback when x-amz-content-sha256 is
		// absent. Content-Length tells us that without reading the
		// body off the wire, which would defeat streaming PUTs.
		var bodyProbe []byte
		if req.ContentLength > 0 {
			bodyProbe = make([]byte, 1)
		}

		cred, authType, diag, err := sigv4.VerifyRequest(req, bodyProbe, lookup, region, clock())
		data.AuthType = authType
		data.Credential = cred

		if err != nil {
			if aerr, ok := err.(apierror.Error); ok && aerr.Code == apierror.SignatureDoesNotMatch {
				log.Debugf("signature mismatch: canonical_request=%q string_to_sign=%q computed=%q presented=%q",
					diag.CanonicalRequest, diag.StringToSign, diag.ComputedSignature, diag.PresentSignature)
			}
			return err
		}

		return nil
	}
}
