package router

import "strings"

const maxKeyBytes = 1024

// ValidKeyLength reports whether key's byte length is within the
// spec's 1024-byte limit. Empty keys are a scope-resolution concern,
// not a length one, and pass here.
func ValidKeyLength(key string) bool {
	return len(key) <= maxKeyBytes
}

// ValidBucketName implements the bucket naming predicate: 3-63 chars,
// lowercase ASCII alphanumerics plus '-' and '.', no leading/trailing
// dot or hyphen, no "..", no "-." or ".-". Pure function of the
// string; does not consult any cache or store.
func ValidBucketName(name string) bool {
	if len(name) < 3 || len(name) > 63 {
		return false
	}

	first := name[0]
	last := name[len(name)-1]
	if first == '.' || first == '-' || last == '.' || last == '-' {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '.':
		default:
			return false
		}
	}

	if strings.Contains(name, "..") || strings.Contains(name, "-.") || strings.Contains(name, ".-") {
		return false
	}

	return true
}
