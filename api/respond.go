package api

import (
	"encoding/xml"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// writeXML marshals body as an XML document with the standard header
// and writes it with the given status.
func writeXML(w http.ResponseWriter, status int, body interface{}) {
	out, err := xml.MarshalIndent(body, "", "  ")
	if err != nil {
		log.Errorf("failed to marshal XML response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	w.Write([]byte(xml.Header))
	w.Write(out)
}

// writeError renders err as the S3 XML error body, preferring the
// apierror.Error this gateway's own components return. Any other error
// type folds into InternalError rather than leaking its message.
func writeError(w http.ResponseWriter, requestID string, err error) {
	aerr, ok := err.(apierror.Error)
	if !ok {
		aerr = apierror.New(apierror.InternalError, "", err).(apierror.Error)
	}

	body, merr := aerr.MarshalXML(requestID)
	if merr != nil {
		log.Errorf("failed to marshal error XML: %s", merr)
		http.Error(w, aerr.Message, aerr.HTTPStatus())
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("x-amz-request-id", requestID)
	w.WriteHeader(aerr.HTTPStatus())
	w.Write(body)
}
