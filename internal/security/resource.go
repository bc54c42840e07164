package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
)

// SignResource seals a stored record to its object key so a swapped or
// renamed object is detectable.
func SignResource(secret string, resourceID string, objectKey string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join([]string{resourceID, objectKey}, "\n")))
	return mac.Sum(nil)
}

func VerifyResource(secret string, resourceID string, objectKey string, signature []byte) bool {
	expected := SignResource(secret, resourceID, objectKey)
	return hmac.Equal(signature, expected)
}
