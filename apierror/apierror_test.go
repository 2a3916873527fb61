package apierror

import (
	"encoding/xml"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
)

// every declared Code must resolve to a table entry; an unmapped
// variant would silently degrade to InternalError at request time.
var allCodes = []Code{
	InvalidCopyDest, InvalidCopySource, InvalidRestoreInfo,
	InvalidCopySourceStorageClass, InvalidCopyRequest,
	InvalidCopyRequestWithSameObject, InvalidRenameSourceKey,
	InvalidRenameTarget, NotSupportBucketEnabledVersion,
	InvalidPrecondition, InvalidRequestBody, InvalidEncodingType,
	InvalidContinuationToken, InvalidMaxUploads, InvalidMaxKeys,
	InvalidMaxParts, InvalidPartNumberMarker, InvalidPolicyDocument,
	InvalidCorsDocument, InvalidVersioning, InvalidGlacierObject,
	AccessDenied, BadDigest, BucketAlreadyExists, EmptyEntity,
	EntityTooLarge, IncompleteBody, InternalError, InvalidAccessKeyID,
	InvalidBucketName, InvalidObjectName, InvalidDigest, InvalidRange,
	MalformedXML, MissingContentLength, MissingContentMD5,
	MissingRequestBodyError, NoSuchBucket, NoSuchBucketPolicy, NoSuchKey,
	NoSuchUpload, NoSuchVersion, NotImplemented, PreconditionFailed,
	RequestTimeTooSkewed, SignatureDoesNotMatch, MethodNotAllowed,
	InvalidPart, InvalidPartOrder, AuthorizationHeaderMalformed,
	MalformedPOSTRequest, SignatureVersionNotSupported, BucketNotEmpty,
	BucketAccessForbidden, MalformedPolicy, MissingFields,
	MissingCredTag, CredMalformed, MalformedDate, InvalidRegion,
	InvalidService, InvalidRequestVersion, MissingSignTag,
	MissingSignHeadersTag, MissingRequiredSignedHeader,
	SignedHeadersNotSorted, PolicyAlreadyExpired, PolicyViolation,
	MalformedExpires, AuthHeaderEmpty, MissingDateHeader,
	InvalidQuerySignatureAlgo, ExpiredPresignRequest, InvalidQueryParams,
	BucketAlreadyOwnedByYou, TooManyBuckets, InvalidEncryptionMethod,
	InsecureSSECustomerRequest, SSEMultipartEncrypted, SSEEncryptedObject,
	InvalidEncryptionParameters, InvalidSSECustomerAlgorithm,
	InvalidSSECustomerKey, MissingSSECustomerKey, MissingSSECustomerKeyMD5,
	SSECustomerKeyMD5Mismatch, InvalidSSECustomerParameters,
	IncompatibleEncryptionMethod, KMSNotConfigured, KMSAuthFailure,
	ContentSHA256Mismatch, InvalidCanndAcl, InvalidSseHeader,
	ContentNotModified, InvalidHeader, InvalidStatus, NoSuchBucketCors,
	PolicyMissingFields, InvalidAcl, UnsupportedAcl, NonUTF8Encode,
	NoSuchBucketLc, InvalidLc, InvalidPosition, ObjectNotAppendable,
	PositionNotEqualToLength, InvalidStorageClass,
	InvalidWebsiteConfiguration, MalformedWebsiteConfiguration,
	InvalidWebsiteRedirectProtocol, ExceededWebsiteRoutingRulesLimit,
	SecondLevelDomainForbidden, MissingRoutingRuleInWebsiteRules,
	MissingRedirectInWebsiteRoutingRule,
	MissingRedirectElementInWebsiteRoutingRule,
	DuplicateKeyReplaceTagInWebsiteRoutingRule,
	InvalidHttpRedirectCodeInWebsiteRoutingRule, IndexDocumentNotAllowed,
	InvalidIndexDocumentSuffix, InvalidErrorDocumentKey, MetadataHeader,
	MalformedMetadataConfiguration, MalformedEncryptionConfiguration,
	MissingRuleInEncryption, MissingEncryptionByDefaultInEncryptionRule,
	MissingSSEAlgorithmOrKMSMasterKeyIDInEncryptionRule,
	ExceededEncryptionRulesLimit, CreateRestoreObject, Maintenance,
	KeyTooLong, SlowDown, EntityTooSmall, InvalidArgument,
}

func TestTableCoversEveryDeclaredCode(t *testing.T) {
	for _, c := range allCodes {
		awsCode, message, status, ok := Lookup(c)
		if !ok {
			t.Errorf("code %s has no table entry", c)
			continue
		}
		if awsCode == "" {
			t.Errorf("code %s has empty AWS code", c)
		}
		if message == "" {
			t.Errorf("code %s has empty message", c)
		}
		if status < 300 || status >= 600 {
			t.Errorf("code %s has implausible status %d", c, status)
		}
	}
}

func TestNewUnknownCodeFallsBackToInternalError(t *testing.T) {
	err := New(Code("NotARealCode"), "oops", nil)
	aerr, ok := err.(Error)
	if !ok {
		t.Fatalf("expected Error, got %T", err)
	}
	if aerr.Code != InternalError {
		t.Errorf("expected fallback to InternalError, got %s", aerr.Code)
	}
	if aerr.Status != 500 {
		t.Errorf("expected status 500, got %d", aerr.Status)
	}
}

func TestNewPreservesMessageAndCause(t *testing.T) {
	cause := awserr.New(s3.ErrCodeNoSuchKey, "not found", nil)
	err := New(NoSuchKey, "no such key: foo", cause)
	aerr := err.(Error)

	if aerr.Message != "no such key: foo" {
		t.Errorf("expected custom message preserved, got %q", aerr.Message)
	}
	if aerr.Cause() != cause {
		t.Errorf("expected cause preserved")
	}
	if aerr.AWSCode != "NoSuchKey" {
		t.Errorf("expected AWS code NoSuchKey, got %s", aerr.AWSCode)
	}
}

func TestMarshalXML(t *testing.T) {
	err := New(NoSuchBucket, "", nil).(Error).WithResource("my-bucket")
	body, merr := err.MarshalXML("req-123")
	if merr != nil {
		t.Fatalf("unexpected marshal error: %s", merr)
	}

	var parsed struct {
		XMLName   xml.Name `xml:"Error"`
		Code      string   `xml:"Code"`
		Message   string   `xml:"Message"`
		Resource  string   `xml:"Resource"`
		RequestID string   `xml:"RequestId"`
	}
	if uerr := xml.Unmarshal(body, &parsed); uerr != nil {
		t.Fatalf("produced body did not parse as XML: %s", uerr)
	}

	if parsed.Code != "NoSuchBucket" {
		t.Errorf("expected Code NoSuchBucket, got %s", parsed.Code)
	}
	if parsed.Resource != "my-bucket" {
		t.Errorf("expected Resource my-bucket, got %s", parsed.Resource)
	}
	if parsed.RequestID != "req-123" {
		t.Errorf("expected RequestId req-123, got %s", parsed.RequestID)
	}
}

func TestErrCodeTranslatesAWSErrors(t *testing.T) {
	cases := []struct {
		awsCode  string
		expected Code
	}{
		{s3.ErrCodeNoSuchBucket, NoSuchBucket},
		{s3.ErrCodeNoSuchKey, NoSuchKey},
		{s3.ErrCodeBucketAlreadyExists, BucketAlreadyExists},
		{"AccessDenied", AccessDenied},
		{"SignatureDoesNotMatch", SignatureDoesNotMatch},
		{"SomeUnknownAWSCode", InternalError},
	}

	for _, c := range cases {
		err := ErrCode("operation failed", awserr.New(c.awsCode, "boom", nil))
		aerr, ok := err.(Error)
		if !ok {
			t.Fatalf("expected Error for %s, got %T", c.awsCode, err)
		}
		if aerr.Code != c.expected {
			t.Errorf("aws code %s: expected %s, got %s", c.awsCode, c.expected, aerr.Code)
		}
	}
}

func TestErrCodeNonAWSErrorIsInternalError(t *testing.T) {
	err := ErrCode("operation failed", errNotAWS{})
	aerr, ok := err.(Error)
	if !ok {
		t.Fatalf("expected Error, got %T", err)
	}
	if aerr.Code != InternalError {
		t.Errorf("expected InternalError, got %s", aerr.Code)
	}
}

type errNotAWS struct{}

func (errNotAWS) Error() string { return "not an aws error" }
