// Package apierror implements the S3 error taxonomy: a closed set of
// named error codes, each carrying the AWS error code string, an
// English message, and the HTTP status the gateway answers with, plus
// the XML wire body S3 clients expect back.
package apierror

import (
	"encoding/xml"
	"fmt"
)

// Code names one variant of the closed S3 error taxonomy. The zero
// value is not a valid Code; Lookup reports ok=false for it (and for
// any other unrecognized Code), and New falls back to InternalError
// for it. Neither panics.
type Code string

// Error satisfies the error interface and carries enough detail to
// render the XML <Error> body and pick an HTTP status.
type Error struct {
	Code     Code
	AWSCode  string
	Message  string
	Resource string
	Status   int
	cause    error
}

func (e Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Cause unwraps the underlying error, satisfying github.com/pkg/errors'
// causer interface.
func (e Error) Cause() error {
	return e.cause
}

// New builds an Error from a taxonomy Code, an operation-specific
// message, and an optional wrapped cause. An unrecognized code resolves
// to InternalError/500 rather than panicking.
func New(code Code, message string, cause error) error {
	entry, ok := table[code]
	if !ok {
		entry = table[InternalError]
		code = InternalError
	}

	msg := message
	if msg == "" {
		msg = entry.Message
	}

	return Error{
		Code:    code,
		AWSCode: entry.Code,
		Message: msg,
		Status:  entry.Status,
		cause:   cause,
	}
}

// WithResource attaches the bucket/key the error applies to, for the
// XML body's <Resource> element.
func (e Error) WithResource(resource string) Error {
	e.Resource = resource
	return e
}

// HTTPStatus returns the status code to answer the request with.
func (e Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return 500
}

// xmlError is the wire representation of an Error, matching the shape
// every S3 client parses: <Error><Code/><Message/><Resource/><RequestId/></Error>.
type xmlError struct {
	XMLName   xml.Name `xml:"Error"`
	Code      string   `xml:"Code"`
	Message   string   `xml:"Message"`
	Resource  string   `xml:"Resource,omitempty"`
	RequestID string   `xml:"RequestId,omitempty"`
}

// MarshalXML renders the S3 error XML body for this error, tagging it
// with the request id the filter pipeline assigned.
func (e Error) MarshalXML(requestID string) ([]byte, error) {
	body := xmlError{
		Code:      e.AWSCode,
		Message:   e.Message,
		Resource:  e.Resource,
		RequestID: requestID,
	}
	out, err := xml.MarshalIndent(body, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// Lookup returns the taxonomy entry for code, and whether it is a
// recognized variant.
func Lookup(code Code) (awsCode string, message string, status int, ok bool) {
	entry, ok := table[code]
	if !ok {
		return "", "", 0, false
	}
	return entry.Code, entry.Message, entry.Status, true
}
