package apierror

// entry holds one taxonomy variant's wire code, default message, and
// HTTP status.
type entry struct {
	Code    string
	Message string
	Status  int
}

// Closed set of S3 error codes. Names follow the AWS error code
// (CamelCase, no "Err" prefix) rather than the teacher's coarse
// ErrBadRequest/ErrNotFound-style buckets, since the wire protocol
// requires the exact per-condition code in the XML body.
const (
	InvalidCopyDest Code = "InvalidCopyDest"
	InvalidCopySource Code = "InvalidCopySource"
	InvalidRestoreInfo Code = "InvalidRestoreInfo"
	InvalidCopySourceStorageClass Code = "InvalidCopySourceStorageClass"
	InvalidCopyRequest Code = "InvalidCopyRequest"
	InvalidCopyRequestWithSameObject Code = "InvalidCopyRequestWithSameObject"
	InvalidRenameSourceKey Code = "InvalidRenameSourceKey"
	InvalidRenameTarget Code = "InvalidRenameTarget"
	NotSupportBucketEnabledVersion Code = "NotSupportBucketEnabledVersion"
	InvalidPrecondition Code = "InvalidPrecondition"
	InvalidRequestBody Code = "InvalidRequestBody"
	InvalidEncodingType Code = "InvalidEncodingType"
	InvalidContinuationToken Code = "InvalidContinuationToken"
	InvalidMaxUploads Code = "InvalidMaxUploads"
	InvalidMaxKeys Code = "InvalidMaxKeys"
	InvalidMaxParts Code = "InvalidMaxParts"
	InvalidPartNumberMarker Code = "InvalidPartNumberMarker"
	InvalidPolicyDocument Code = "InvalidPolicyDocument"
	InvalidCorsDocument Code = "InvalidCorsDocument"
	InvalidVersioning Code = "InvalidVersioning"
	InvalidGlacierObject Code = "InvalidGlacierObject"
	AccessDenied Code = "AccessDenied"
	BadDigest Code = "BadDigest"
	BucketAlreadyExists Code = "BucketAlreadyExists"
	EmptyEntity Code = "EmptyEntity"
	EntityTooLarge Code = "EntityTooLarge"
	IncompleteBody Code = "IncompleteBody"
	InternalError Code = "InternalError"
	InvalidAccessKeyID Code = "InvalidAccessKeyID"
	InvalidBucketName Code = "InvalidBucketName"
	InvalidObjectName Code = "InvalidObjectName"
	InvalidDigest Code = "InvalidDigest"
	InvalidRange Code = "InvalidRange"
	MalformedXML Code = "MalformedXML"
	MissingContentLength Code = "MissingContentLength"
	MissingContentMD5 Code = "MissingContentMD5"
	MissingRequestBodyError Code = "MissingRequestBodyError"
	NoSuchBucket Code = "NoSuchBucket"
	NoSuchBucketPolicy Code = "NoSuchBucketPolicy"
	NoSuchKey Code = "NoSuchKey"
	NoSuchUpload Code = "NoSuchUpload"
	NoSuchVersion Code = "NoSuchVersion"
	NotImplemented Code = "NotImplemented"
	PreconditionFailed Code = "PreconditionFailed"
	RequestTimeTooSkewed Code = "RequestTimeTooSkewed"
	SignatureDoesNotMatch Code = "SignatureDoesNotMatch"
	MethodNotAllowed Code = "MethodNotAllowed"
	InvalidPart Code = "InvalidPart"
	InvalidPartOrder Code = "InvalidPartOrder"
	AuthorizationHeaderMalformed Code = "AuthorizationHeaderMalformed"
	MalformedPOSTRequest Code = "MalformedPOSTRequest"
	SignatureVersionNotSupported Code = "SignatureVersionNotSupported"
	BucketNotEmpty Code = "BucketNotEmpty"
	BucketAccessForbidden Code = "BucketAccessForbidden"
	MalformedPolicy Code = "MalformedPolicy"
	MissingFields Code = "MissingFields"
	MissingCredTag Code = "MissingCredTag"
	CredMalformed Code = "CredMalformed"
	MalformedDate Code = "MalformedDate"
	InvalidRegion Code = "InvalidRegion"
	InvalidService Code = "InvalidService"
	InvalidRequestVersion Code = "InvalidRequestVersion"
	MissingSignTag Code = "MissingSignTag"
	MissingSignHeadersTag Code = "MissingSignHeadersTag"
	MissingRequiredSignedHeader Code = "MissingRequiredSignedHeader"
	SignedHeadersNotSorted Code = "SignedHeadersNotSorted"
	PolicyAlreadyExpired Code = "PolicyAlreadyExpired"
	PolicyViolation Code = "PolicyViolation"
	MalformedExpires Code = "MalformedExpires"
	AuthHeaderEmpty Code = "AuthHeaderEmpty"
	MissingDateHeader Code = "MissingDateHeader"
	InvalidQuerySignatureAlgo Code = "InvalidQuerySignatureAlgo"
	ExpiredPresignRequest Code = "ExpiredPresignRequest"
	InvalidQueryParams Code = "InvalidQueryParams"
	BucketAlreadyOwnedByYou Code = "BucketAlreadyOwnedByYou"
	TooManyBuckets Code = "TooManyBuckets"
	InvalidEncryptionMethod Code = "InvalidEncryptionMethod"
	InsecureSSECustomerRequest Code = "InsecureSSECustomerRequest"
	SSEMultipartEncrypted Code = "SSEMultipartEncrypted"
	SSEEncryptedObject Code = "SSEEncryptedObject"
	InvalidEncryptionParameters Code = "InvalidEncryptionParameters"
	InvalidSSECustomerAlgorithm Code = "InvalidSSECustomerAlgorithm"
	InvalidSSECustomerKey Code = "InvalidSSECustomerKey"
	MissingSSECustomerKey Code = "MissingSSECustomerKey"
	MissingSSECustomerKeyMD5 Code = "MissingSSECustomerKeyMD5"
	SSECustomerKeyMD5Mismatch Code = "SSECustomerKeyMD5Mismatch"
	InvalidSSECustomerParameters Code = "InvalidSSECustomerParameters"
	IncompatibleEncryptionMethod Code = "IncompatibleEncryptionMethod"
	KMSNotConfigured Code = "KMSNotConfigured"
	KMSAuthFailure Code = "KMSAuthFailure"
	ContentSHA256Mismatch Code = "ContentSHA256Mismatch"
	InvalidCanndAcl Code = "InvalidCanndAcl"
	InvalidSseHeader Code = "InvalidSseHeader"
	ContentNotModified Code = "ContentNotModified"
	InvalidHeader Code = "InvalidHeader"
	InvalidStatus Code = "InvalidStatus"
	NoSuchBucketCors Code = "NoSuchBucketCors"
	PolicyMissingFields Code = "PolicyMissingFields"
	InvalidAcl Code = "InvalidAcl"
	UnsupportedAcl Code = "UnsupportedAcl"
	NonUTF8Encode Code = "NonUTF8Encode"
	NoSuchBucketLc Code = "NoSuchBucketLc"
	InvalidLc Code = "InvalidLc"
	InvalidPosition Code = "InvalidPosition"
	ObjectNotAppendable Code = "ObjectNotAppendable"
	PositionNotEqualToLength Code = "PositionNotEqualToLength"
	InvalidStorageClass Code = "InvalidStorageClass"
	InvalidWebsiteConfiguration Code = "InvalidWebsiteConfiguration"
	MalformedWebsiteConfiguration Code = "MalformedWebsiteConfiguration"
	InvalidWebsiteRedirectProtocol Code = "InvalidWebsiteRedirectProtocol"
	ExceededWebsiteRoutingRulesLimit Code = "ExceededWebsiteRoutingRulesLimit"
	SecondLevelDomainForbidden Code = "SecondLevelDomainForbidden"
	MissingRoutingRuleInWebsiteRules Code = "MissingRoutingRuleInWebsiteRules"
	MissingRedirectInWebsiteRoutingRule Code = "MissingRedirectInWebsiteRoutingRule"
	MissingRedirectElementInWebsiteRoutingRule Code = "MissingRedirectElementInWebsiteRoutingRule"
	DuplicateKeyReplaceTagInWebsiteRoutingRule Code = "DuplicateKeyReplaceTagInWebsiteRoutingRule"
	InvalidHttpRedirectCodeInWebsiteRoutingRule Code = "InvalidHttpRedirectCodeInWebsiteRoutingRule"
	IndexDocumentNotAllowed Code = "IndexDocumentNotAllowed"
	InvalidIndexDocumentSuffix Code = "InvalidIndexDocumentSuffix"
	InvalidErrorDocumentKey Code = "InvalidErrorDocumentKey"
	MetadataHeader Code = "MetadataHeader"
	MalformedMetadataConfiguration Code = "MalformedMetadataConfiguration"
	MalformedEncryptionConfiguration Code = "MalformedEncryptionConfiguration"
	MissingRuleInEncryption Code = "MissingRuleInEncryption"
	MissingEncryptionByDefaultInEncryptionRule Code = "MissingEncryptionByDefaultInEncryptionRule"
	MissingSSEAlgorithmOrKMSMasterKeyIDInEncryptionRule Code = "MissingSSEAlgorithmOrKMSMasterKeyIDInEncryptionRule"
	ExceededEncryptionRulesLimit Code = "ExceededEncryptionRulesLimit"
	CreateRestoreObject Code = "CreateRestoreObject"
	Maintenance Code = "Maintenance"
	KeyTooLong Code = "KeyTooLong"
	SlowDown Code = "SlowDown"
	EntityTooSmall Code = "EntityTooSmall"
	InvalidArgument Code = "InvalidArgument"
)

// table maps every Code to its wire representation. KeyTooLong,
// SlowDown, EntityTooSmall, and InvalidArgument are gateway additions
// with no counterpart in the upstream error table: the first is
// enforced by the router's key-length check, the second by the rate
// limiter's deny path, the third by the fullstack façade's
// multipart-completion validation (non-final part too small), and the
// last by UploadPart's part-number range check and the API layer's
// request-parameter parsing.
var table = map[Code]entry{
	InvalidCopyDest: {Code: "InvalidRequest", Message: "This copy request is illegal because it is trying to copy an object to itself", Status: 400},
	InvalidCopySource: {Code: "InvalidArgument", Message: "Copy Source must mention the source bucket and key: sourcebucket/sourcekey", Status: 400},
	InvalidRestoreInfo: {Code: "InvalidRestoreInfo", Message: "Defrost parameter setting error.", Status: 400},
	InvalidCopySourceStorageClass: {Code: "InvalidCopySourceStorageClass", Message: "Storage class of copy source cannot be GLACIER or DEEP_ARCHIVE", Status: 400},
	InvalidCopyRequest: {Code: "InvalidCopyRequest", Message: "X-Amz-Metadata-Directive should be COPY or REPLACE", Status: 400},
	InvalidCopyRequestWithSameObject: {Code: "InvalidCopyRequest", Message: "This copy request is illegal because it is trying to copy an object to itself without changing the object's metadata, storage class, website redirect location or encryption attributes.", Status: 400},
	InvalidRenameSourceKey: {Code: "InvalidRenameSourceKey", Message: "X-Amz-Rename-Source-Key must be a valid URL-encoded object name, renaming folders is not supported.", Status: 400},
	InvalidRenameTarget: {Code: "InvalidRenameTarget", Message: "Rename Target must not be a folder and addition target have not already created.", Status: 400},
	NotSupportBucketEnabledVersion: {Code: "NotSupported", Message: "Renaming objects in multi-version enabled buckets is not supported.", Status: 400},
	InvalidPrecondition: {Code: "InvalidArgument", Message: "The provided preconditions are not valid(bad time format, rule combination, etc)", Status: 400},
	InvalidRequestBody: {Code: "InvalidArgument", Message: "Body shouldn't be set for this request", Status: 400},
	InvalidEncodingType: {Code: "InvalidEncodingType", Message: "The encoding type specified is not allowed.", Status: 400},
	InvalidContinuationToken: {Code: "InvalidArgument", Message: "The continuation token provided is invalid.", Status: 400},
	InvalidMaxUploads: {Code: "InvalidArgument", Message: "Argument max-uploads must be an integer between 1 and 1000", Status: 400},
	InvalidMaxKeys: {Code: "InvalidArgument", Message: "Argument max-keys must be an integer between 1 and 1000", Status: 400},
	InvalidMaxParts: {Code: "InvalidArgument", Message: "Argument max-parts must be an integer between 1 and 1000", Status: 400},
	InvalidPartNumberMarker: {Code: "InvalidArgument", Message: "Argument part-number-marker must be an integer between 0 and 10000", Status: 400},
	InvalidPolicyDocument: {Code: "MalformedPolicy", Message: "Policy has invalid resource", Status: 400},
	InvalidCorsDocument: {Code: "MalformedPolicy", Message: "CORS has invalid resource", Status: 400},
	InvalidVersioning: {Code: "IllegalVersioningConfigurationException", Message: "The versioning configuration is not valid.", Status: 400},
	InvalidGlacierObject: {Code: "InvalidGlacierObject", Message: "The operation is not valid for the object's storage class.", Status: 400},
	AccessDenied: {Code: "AccessDenied", Message: "Access Denied.", Status: 403},
	BadDigest: {Code: "BadDigest", Message: "The Content-MD5 you specified did not match what we received.", Status: 400},
	BucketAlreadyExists: {Code: "BucketAlreadyExists", Message: "The requested bucket name is not available.", Status: 409},
	EmptyEntity: {Code: "EmptyEntity", Message: "Request body is empty.", Status: 400},
	EntityTooLarge: {Code: "EntityTooLarge", Message: "Your proposed upload exceeds the maximum allowed object size.", Status: 400},
	IncompleteBody: {Code: "IncompleteBody", Message: "You did not provide the number of bytes specified by the Content-Length HTTP header.", Status: 400},
	InternalError: {Code: "InternalError", Message: "We encountered an internal error, please try again.", Status: 500},
	InvalidAccessKeyID: {Code: "InvalidAccessKeyId", Message: "The AWS Access Key Id you provided does not exist in our records.", Status: 403},
	InvalidBucketName: {Code: "InvalidBucketName", Message: "The specified bucket name is not valid.", Status: 400},
	InvalidObjectName: {Code: "InvalidObjectName", Message: "The specified object name is not valid.", Status: 400},
	InvalidDigest: {Code: "InvalidDigest", Message: "The Content-MD5 you specified is not valid.", Status: 400},
	InvalidRange: {Code: "InvalidRange", Message: "The requested range is not satisfiable.", Status: 416},
	MalformedXML: {Code: "MalformedXML", Message: "The XML you provided was not well-formed or did not validate against our published schema.", Status: 400},
	MissingContentLength: {Code: "MissingContentLength", Message: "You must provide the Content-Length HTTP header.", Status: 411},
	MissingContentMD5: {Code: "MissingContentMD5", Message: "Missing required header for this request: Content-MD5", Status: 400},
	MissingRequestBodyError: {Code: "MissingRequestBodyError", Message: "Request body is empty.", Status: 400},
	NoSuchBucket: {Code: "NoSuchBucket", Message: "The specified bucket does not exist.", Status: 404},
	NoSuchBucketPolicy: {Code: "NoSuchBucketPolicy", Message: "The bucket policy does not exist.", Status: 404},
	NoSuchKey: {Code: "NoSuchKey", Message: "The specified key does not exist.", Status: 404},
	NoSuchUpload: {Code: "NoSuchUpload", Message: "The specified multipart upload does not exist.", Status: 404},
	NoSuchVersion: {Code: "NoSuchVersion", Message: "The specified version does not exist.", Status: 404},
	NotImplemented: {Code: "NotImplemented", Message: "A header you provided implies functionality that is not implemented.", Status: 501},
	PreconditionFailed: {Code: "PreconditionFailed", Message: "At least one of the preconditions you specified did not hold.", Status: 412},
	RequestTimeTooSkewed: {Code: "RequestTimeTooSkewed", Message: "The difference between the request time and the server's time is too large.", Status: 403},
	SignatureDoesNotMatch: {Code: "SignatureDoesNotMatch", Message: "The request signature we calculated does not match the signature you provided.", Status: 403},
	MethodNotAllowed: {Code: "MethodNotAllowed", Message: "The specified method is not allowed against this resource.", Status: 405},
	InvalidPart: {Code: "InvalidPart", Message: "One or more of the specified parts could not be found.", Status: 400},
	InvalidPartOrder: {Code: "InvalidPartOrder", Message: "The list of parts was not in ascending order.", Status: 400},
	AuthorizationHeaderMalformed: {Code: "AuthorizationHeaderMalformed", Message: "The authorization header is malformed.", Status: 400},
	MalformedPOSTRequest: {Code: "MalformedPOSTRequest", Message: "The body of your POST request is not well-formed multipart/form-data.", Status: 400},
	SignatureVersionNotSupported: {Code: "SignatureVersionNotSupported", Message: "The requested signature version is not supported.", Status: 403},
	BucketNotEmpty: {Code: "BucketNotEmpty", Message: "The bucket you tried to delete is not empty.", Status: 409},
	BucketAccessForbidden: {Code: "AccessForbidden", Message: "Access to the bucket is forbidden.", Status: 403},
	MalformedPolicy: {Code: "MalformedPolicy", Message: "The policy provided is not valid.", Status: 400},
	MissingFields: {Code: "MissingFields", Message: "Request is missing required fields.", Status: 400},
	MissingCredTag: {Code: "MissingCredTag", Message: "Request is missing credential tag.", Status: 400},
	CredMalformed: {Code: "CredMalformed", Message: "Request credential is malformed.", Status: 400},
	MalformedDate: {Code: "MalformedDate", Message: "Request date is malformed.", Status: 400},
	InvalidRegion: {Code: "InvalidRegion", Message: "The specified region is not valid.", Status: 400},
	InvalidService: {Code: "AccessDenied", Message: "The specified service is not valid.", Status: 400},
	InvalidRequestVersion: {Code: "AccessDenied", Message: "The specified request version is not valid.", Status: 400},
	MissingSignTag: {Code: "AccessDenied", Message: "Request is missing sign tag.", Status: 400},
	MissingSignHeadersTag: {Code: "InvalidArgument", Message: "Request is missing sign headers tag.", Status: 400},
	MissingRequiredSignedHeader: {Code: "InvalidArgument", Message: "Request is missing required signed header.", Status: 400},
	SignedHeadersNotSorted: {Code: "InvalidArgument", Message: "Request signed headers are not sorted.", Status: 400},
	PolicyAlreadyExpired: {Code: "AccessDenied", Message: "Policy has already expired.", Status: 403},
	PolicyViolation: {Code: "AccessDenied", Message: "Policy violation.", Status: 403},
	MalformedExpires: {Code: "MalformedExpires", Message: "Malformed expires value, should be between 1 and 604800(seven days)", Status: 400},
	AuthHeaderEmpty: {Code: "InvalidArgument", Message: "Authorization header is empty.", Status: 400},
	MissingDateHeader: {Code: "AccessDenied", Message: "Date header is missing.", Status: 400},
	InvalidQuerySignatureAlgo: {Code: "AuthorizationQueryParametersError", Message: "Query signature algorithm is invalid.", Status: 400},
	ExpiredPresignRequest: {Code: "ExpiredToken", Message: "Presign request has expired.", Status: 403},
	InvalidQueryParams: {Code: "AuthorizationQueryParametersError", Message: "Query parameters are invalid.", Status: 400},
	BucketAlreadyOwnedByYou: {Code: "BucketAlreadyOwnedByYou", Message: "Your previous request to create the named bucket succeeded and you already own it.", Status: 409},
	TooManyBuckets: {Code: "TooManyBuckets", Message: "You have attempted to create more buckets than allowed.", Status: 400},
	InvalidEncryptionMethod: {Code: "InvalidRequest", Message: "The encryption method specified is not valid.", Status: 400},
	InsecureSSECustomerRequest: {Code: "InvalidRequest", Message: "Requests specifying Server Side Encryption with Customer provided keys should use HTTPS.", Status: 400},
	SSEMultipartEncrypted: {Code: "InvalidRequest", Message: "The multipart upload initiation request specified server side encryption with customer provided keys but no encryption key.", Status: 400},
	SSEEncryptedObject: {Code: "InvalidRequest", Message: "The object was stored using a form of Server Side Encryption with Customer provided keys but was not being requested to be downloaded using customer provided keys.", Status: 400},
	InvalidEncryptionParameters: {Code: "InvalidRequest", Message: "The encryption parameters specified are not valid.", Status: 400},
	InvalidSSECustomerAlgorithm: {Code: "InvalidArgument", Message: "The SSE-C algorithm specified is not valid.", Status: 400},
	InvalidSSECustomerKey: {Code: "InvalidArgument", Message: "The SSE-C key provided is invalid.", Status: 400},
	MissingSSECustomerKey: {Code: "InvalidArgument", Message: "The SSE-C key is required for this operation.", Status: 400},
	MissingSSECustomerKeyMD5: {Code: "InvalidArgument", Message: "The SSE-C key MD5 is required for this operation.", Status: 400},
	SSECustomerKeyMD5Mismatch: {Code: "InvalidArgument", Message: "The provided SSE-C key and MD5 do not match.", Status: 400},
	InvalidSSECustomerParameters: {Code: "InvalidArgument", Message: "The SSE-C parameters are not valid.", Status: 400},
	IncompatibleEncryptionMethod: {Code: "InvalidRequest", Message: "The encryption method specified is not compatible with the specified storage class.", Status: 400},
	KMSNotConfigured: {Code: "InvalidArgument", Message: "The KMS key is not configured properly.", Status: 400},
	KMSAuthFailure: {Code: "InvalidArgument", Message: "The KMS key authorization failed.", Status: 400},
	ContentSHA256Mismatch: {Code: "XAmzContentSHA256Mismatch", Message: "The provided 'x-amz-content-sha256' header does not match what was computed.", Status: 400},
	InvalidCanndAcl: {Code: "InvalidAcl", Message: "The canned ACL specified is not valid.", Status: 400},
	InvalidSseHeader: {Code: "InvalidArgument", Message: "The SSE header is not valid.", Status: 400},
	ContentNotModified: {Code: "NotModified", Message: "The requested resource has not been modified since the specified time.", Status: 304},
	InvalidHeader: {Code: "InvalidStatus", Message: "The header provided is not valid.", Status: 400},
	InvalidStatus: {Code: "InvalidStatus", Message: "The status provided is not valid.", Status: 400},
	NoSuchBucketCors: {Code: "NoSuchCORSConfiguration", Message: "The CORS configuration does not exist.", Status: 404},
	PolicyMissingFields: {Code: "AccessDenied", Message: "Policy is missing required fields.", Status: 403},
	InvalidAcl: {Code: "IllegalAclConfigurationException", Message: "The ACL provided is not valid.", Status: 400},
	UnsupportedAcl: {Code: "UnsupportedAclConfigurationException", Message: "The ACL provided is not supported.", Status: 400},
	NonUTF8Encode: {Code: "InvalidArgument", Message: "The object name is not valid UTF-8 encoded.", Status: 400},
	NoSuchBucketLc: {Code: "NoSuchLifecycleConfiguration", Message: "The lifecycle configuration does not exist.", Status: 404},
	InvalidLc: {Code: "MalformedLifecycleConfiguration", Message: "The lifecycle configuration provided is not valid.", Status: 400},
	InvalidPosition: {Code: "InvalidPosition", Message: "The position specified is not valid.", Status: 400},
	ObjectNotAppendable: {Code: "InvalidObjectState", Message: "The object is not appendable.", Status: 409},
	PositionNotEqualToLength: {Code: "InvalidPosition", Message: "The position specified is not equal to the object length.", Status: 409},
	InvalidStorageClass: {Code: "InvalidStorageClass", Message: "The storage class specified is not valid.", Status: 400},
	InvalidWebsiteConfiguration: {Code: "MalformedXML", Message: "The website configuration provided is not valid.", Status: 400},
	MalformedWebsiteConfiguration: {Code: "MalformedXML", Message: "The website configuration provided is not well-formed.", Status: 409},
	InvalidWebsiteRedirectProtocol: {Code: "InvalidRedirectLocation", Message: "The website redirect location protocol is not valid.", Status: 400},
	ExceededWebsiteRoutingRulesLimit: {Code: "TooManyWebsiteRules", Message: "The website routing rules limit is exceeded.", Status: 400},
	SecondLevelDomainForbidden: {Code: "InvalidDomainName", Message: "The second level domain is forbidden.", Status: 400},
	MissingRoutingRuleInWebsiteRules: {Code: "MissingRoutingRule", Message: "The routing rule is missing in the website rules.", Status: 400},
	MissingRedirectInWebsiteRoutingRule: {Code: "MissingRedirectLocation", Message: "The redirect location is missing in the website routing rule.", Status: 400},
	MissingRedirectElementInWebsiteRoutingRule: {Code: "MissingRedirectElement", Message: "The redirect element is missing in the website routing rule.", Status: 400},
	DuplicateKeyReplaceTagInWebsiteRoutingRule: {Code: "DuplicateKeyReplaceTag", Message: "The key replace tag is duplicated in the website routing rule.", Status: 400},
	InvalidHttpRedirectCodeInWebsiteRoutingRule: {Code: "InvalidHttpRedirectCode", Message: "The HTTP redirect code is not valid in the website routing rule.", Status: 400},
	IndexDocumentNotAllowed: {Code: "IndexDocumentNotAllowed", Message: "The index document is not allowed.", Status: 400},
	InvalidIndexDocumentSuffix: {Code: "InvalidIndexDocumentSuffix", Message: "The index document suffix is not valid.", Status: 400},
	InvalidErrorDocumentKey: {Code: "InvalidErrorDocumentKey", Message: "The error document key is not valid.", Status: 400},
	MetadataHeader: {Code: "InvalidMetadata", Message: "The metadata header is not valid.", Status: 400},
	MalformedMetadataConfiguration: {Code: "MalformedXML", Message: "The metadata configuration provided is not well-formed.", Status: 400},
	MalformedEncryptionConfiguration: {Code: "MalformedXML", Message: "The encryption configuration provided is not well-formed.", Status: 400},
	MissingRuleInEncryption: {Code: "MissingRuleInEncryption", Message: "The rule is missing in the encryption configuration.", Status: 400},
	MissingEncryptionByDefaultInEncryptionRule: {Code: "MissingEncryptionByDefault", Message: "The encryption by default is missing in the encryption rule.", Status: 400},
	MissingSSEAlgorithmOrKMSMasterKeyIDInEncryptionRule: {Code: "MissingSSEAlgorithmOrKMSMasterKeyID", Message: "The SSE algorithm or KMS master key ID is missing in the encryption rule.", Status: 400},
	ExceededEncryptionRulesLimit: {Code: "TooManyEncryptionRules", Message: "The encryption rules limit is exceeded.", Status: 400},
	CreateRestoreObject: {Code: "InvalidRestoreObject", Message: "The operation is not valid for the object's storage class.", Status: 500},
	Maintenance: {Code: "Maintenance", Message: "The server is under maintenance, please try again later.", Status: 503},
	KeyTooLong: {Code: "KeyTooLong", Message: "Your key is too long.", Status: 400},
	SlowDown: {Code: "SlowDown", Message: "Please reduce your request rate.", Status: 503},
	EntityTooSmall: {Code: "EntityTooSmall", Message: "Your proposed upload is smaller than the minimum allowed object size.", Status: 400},
	InvalidArgument: {Code: "InvalidArgument", Message: "Invalid Argument.", Status: 400},
}
