// Package checksum computes entity tags for persisted configuration blobs.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ETag returns Sum(data) quoted for use in an HTTP ETag header.
func ETag(data []byte) string {
	return `"` + Sum(data) + `"`
}

// Matches reports whether an If-Match header value accepts data. An empty
// header or "*" always matches; quotes and a weak prefix are ignored.
func Matches(ifMatch string, data []byte) bool {
	v := strings.TrimSpace(ifMatch)
	if v == "" || v == "*" {
		return true
	}
	v = strings.Trim(strings.TrimPrefix(v, "W/"), `"`)
	return v == Sum(data)
}
