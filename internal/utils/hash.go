package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signatureSeparator separates a value from its HMAC in a signed string.
const signatureSeparator = "."

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// SignValue appends an HMAC-SHA256 signature to value so that it can be
// handed to a browser (e.g. in a cookie) and checked on the way back.
//
// Example usage:
//
//	cookieValue := utils.SignValue(sessionID, "my-secret-key")
func SignValue(value, hashKey string) string {
	return value + signatureSeparator + HashString(value, hashKey)
}

// VerifySignedValue splits a string produced by [SignValue] and returns the
// original value if the signature matches. Comparison is constant-time.
func VerifySignedValue(signed, hashKey string) (string, bool) {
	idx := strings.LastIndex(signed, signatureSeparator)
	if idx <= 0 || idx == len(signed)-1 {
		return "", false
	}

	value, signature := signed[:idx], signed[idx+1:]
	got, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}

	if !hmac.Equal(got, hashString([]byte(value), hashKey)) {
		return "", false
	}

	return value, true
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
