package apierror

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrCode translates an awserr.Error code bubbling up from the
// file-storage backend's AWS SDK calls into the taxonomy, wrapping the
// original error as the cause. Anything it doesn't recognize falls
// back to InternalError, logged at warn so an unmapped upstream code
// doesn't silently disappear.
func ErrCode(msg string, err error) error {
	aerr, ok := errors.Cause(err).(awserr.Error)
	if !ok {
		return New(InternalError, msg, err)
	}

	switch aerr.Code() {
	case s3.ErrCodeNoSuchBucket:
		return New(NoSuchBucket, msg, aerr)
	case s3.ErrCodeNoSuchKey:
		return New(NoSuchKey, msg, aerr)
	case s3.ErrCodeNoSuchUpload:
		return New(NoSuchUpload, msg, aerr)
	case s3.ErrCodeBucketAlreadyExists:
		return New(BucketAlreadyExists, msg, aerr)
	case s3.ErrCodeBucketAlreadyOwnedByYou:
		return New(BucketAlreadyOwnedByYou, msg, aerr)
	case s3.ErrCodeObjectAlreadyInActiveTierError, s3.ErrCodeObjectNotInActiveTierError:
		return New(InvalidGlacierObject, msg, aerr)
	case "BucketNotEmpty":
		return New(BucketNotEmpty, msg, aerr)
	case "AccessDenied", "Forbidden", "InvalidAccessKeyId":
		return New(AccessDenied, msg, aerr)
	case "SignatureDoesNotMatch":
		return New(SignatureDoesNotMatch, msg, aerr)
	case "InvalidBucketName":
		return New(InvalidBucketName, msg, aerr)
	case "EntityTooLarge":
		return New(EntityTooLarge, msg, aerr)
	case "MissingContentLength":
		return New(MissingContentLength, msg, aerr)
	case "InvalidRange":
		return New(InvalidRange, msg, aerr)
	case "InvalidPart":
		return New(InvalidPart, msg, aerr)
	case "InvalidPartOrder":
		return New(InvalidPartOrder, msg, aerr)
	case "MalformedXML":
		return New(MalformedXML, msg, aerr)
	case "PreconditionFailed":
		return New(PreconditionFailed, msg, aerr)
	case "RequestTimeTooSkewed":
		return New(RequestTimeTooSkewed, msg, aerr)
	case "TooManyBuckets":
		return New(TooManyBuckets, msg, aerr)
	case "SlowDown", "ServiceUnavailable":
		return New(SlowDown, msg, aerr)
	case "NotImplemented":
		return New(NotImplemented, msg, aerr)
	default:
		log.Warnf("uncaught upstream error code %s, returning InternalError: %s", aerr.Code(), msg)
		return New(InternalError, msg, aerr)
	}
}
