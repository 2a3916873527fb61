package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const dateFormat = "20060102"
const amzDateFormat = "20060102T150405Z"

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}

func sha256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Scope returns the credential scope string: YYYYMMDD/region/s3/aws4_request.
func Scope(date time.Time, region string) string {
	return date.Format(dateFormat) + "/" + region + "/s3/aws4_request"
}

// StringToSign builds the four-line string-to-sign: algorithm, request
// date, scope, hex SHA-256 of the canonical request.
func StringToSign(date time.Time, region, canonicalRequest string) string {
	return algorithm + "\n" +
		date.Format(amzDateFormat) + "\n" +
		Scope(date, region) + "\n" +
		sha256Hex(canonicalRequest)
}

// SigningKey derives the four-stage HMAC chain:
// k_date = HMAC("AWS4"+secret, date); k_region = HMAC(k_date, region);
// k_service = HMAC(k_region, "s3"); k_signing = HMAC(k_service, "aws4_request").
func SigningKey(secret string, date time.Time, region string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secret), date.Format(dateFormat))
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, "s3")
	return hmacSHA256(kService, "aws4_request")
}

// Signature returns the lowercase hex HMAC-SHA256 of stringToSign
// under signingKey.
func Signature(signingKey []byte, stringToSign string) string {
	return hex.EncodeToString(hmacSHA256(signingKey, stringToSign))
}
