package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// ValidSignature checks the X-Line-Signature header against an HMAC-SHA256 of
// the raw request bytes, base64-encoded. The raw bytes must be the exact body
// as received; hashing a re-serialization of the parsed body would break on
// key order and whitespace. An absent secret or header fails closed.
func ValidSignature(secret string, body []byte, header string) bool {
	if secret == "" || header == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(header))
}
