package sigv4

import (
	"net/http"
	"sort"
	"strings"
)

// encodeURIPath percent-encodes a URI path the way the canonical
// request requires: unreserved characters pass through, everything
// else (including space and reserved punctuation) is percent-encoded,
// and '/' is always preserved.
func encodeURIPath(path string) string {
	return encodePathSegment(path, false)
}

// encodeQueryComponent percent-encodes a query key or value; unlike
// the path, '/' is encoded here too.
func encodeQueryComponent(s string) string {
	return encodePathSegment(s, true)
}

func encodePathSegment(s string, encodeSlash bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || (c == '/' && !encodeSlash) {
			b.WriteByte(c)
			continue
		}
		b.WriteString("%")
		b.WriteString(strings.ToUpper(hexByte(c)))
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}

const hexDigits = "0123456789abcdef"

func hexByte(c byte) string {
	return string([]byte{hexDigits[c>>4], hexDigits[c&0x0f]})
}

// canonicalQuery rebuilds the raw query string into sorted,
// percent-encoded key=value pairs, '&'-joined. Keys with no '=' get an
// empty value.
func canonicalQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	pairs := strings.Split(rawQuery, "&")
	encoded := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key := pair
		val := ""
		if idx := strings.IndexByte(pair, '='); idx >= 0 {
			key = pair[:idx]
			val = pair[idx+1:]
		}
		encoded = append(encoded, encodeQueryComponent(unescapeLiteral(key))+"="+encodeQueryComponent(unescapeLiteral(val)))
	}
	sort.Strings(encoded)
	return strings.Join(encoded, "&")
}

// unescapeLiteral undoes the percent-encoding the client may already
// have applied, so canonicalization of already-canonical input is
// idempotent rather than double-encoding it.
func unescapeLiteral(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// canonicalHeaders selects, lowercases, trims and sorts the headers
// named in signedHeaders, joining repeated values with a comma. It
// returns the newline-joined header block (without the trailing blank
// line) and the semicolon-joined signed-headers string.
func canonicalHeaders(headers http.Header, signedHeaders []string) (block string, signedList string) {
	names := make([]string, len(signedHeaders))
	copy(names, signedHeaders)
	for i := range names {
		names[i] = strings.ToLower(names[i])
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		values := headers.Values(http.CanonicalHeaderKey(name))
		trimmed := make([]string, len(values))
		for i, v := range values {
			trimmed[i] = strings.TrimSpace(v)
		}
		lines = append(lines, name+":"+strings.Join(trimmed, ","))
	}

	return strings.Join(lines, "\n"), strings.Join(names, ";")
}

// payloadHash returns the x-amz-content-sha256 header verbatim if
// present, otherwise the SHA-256-of-empty-string sentinel for bodies
// known to be empty, otherwise the unsigned-payload sentinel.
func payloadHash(headers http.Header, bodyEmpty bool) string {
	if h := headers.Get("x-amz-content-sha256"); h != "" {
		return h
	}
	if bodyEmpty {
		return unsignedPayloadSHA256
	}
	return unsignedPayloadSentinel
}

// CanonicalRequest assembles the six-line canonical request string
// per spec: method, encoded path, canonical query, canonical headers
// (blank-line terminated), signed headers, payload hash.
func CanonicalRequest(method, path, rawQuery string, headers http.Header, signedHeaders []string, payload string) string {
	headerBlock, signedList := canonicalHeaders(headers, signedHeaders)

	return strings.Join([]string{
		method,
		encodeURIPath(path),
		canonicalQuery(rawQuery),
		headerBlock,
		"",
		signedList,
		payload,
	}, "\n")
}
