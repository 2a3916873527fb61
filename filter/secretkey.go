package filter

import (
	"net/http"

	"github.com/briarcliff-cloud/s3gateway/apierror"
	"github.com/briarcliff-cloud/s3gateway/sigv4"
)

// SecretKey re-reads the key cache for the credential the
// Authentication filter resolved, defending against revocation that
// happened between the two filters. Anonymous requests (zero
// AccessKey) pass through untouched.
func SecretKey(lookup sigv4.CredentialSource) Filter {
	return func(req *http.Request, data *S3Data) error {
		if data.Credential.AccessKey == "" {
			return nil
		}

		if _, ok := lookup.Lookup(data.Credential.AccessKey); !ok {
			return apierror.New(apierror.InvalidAccessKeyID, "the access key id you provided does not exist", nil)
		}

		return nil
	}
}
