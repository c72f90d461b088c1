package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedCookieValue = errors.New("session: cookie value is not id.signature")
	ErrBadSignature         = errors.New("session: cookie signature does not verify")
)

// SignID produces the value stored in the cookie: the session ID followed
// by an HMAC-SHA256 signature keyed with the server secret. The ID itself
// stays opaque; the signature only proves the server issued it.
func SignID(id, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	sig := mac.Sum(nil)
	return fmt.Sprintf("%s.%s", id, base64.RawURLEncoding.EncodeToString(sig))
}

// VerifyValue recovers the session ID from an inbound cookie value,
// rejecting values that were not signed with secret.
func VerifyValue(value, secret string) (string, error) {
	id, encodedSig, found := strings.Cut(value, ".")
	if !found || id == "" {
		return "", ErrMalformedCookieValue
	}

	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return "", ErrMalformedCookieValue
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	expected := mac.Sum(nil)

	if !hmac.Equal(sig, expected) {
		return "", ErrBadSignature
	}

	return id, nil
}
