package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt. The digest is
// salted per call and deliberately slow to compute.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored digest in
// constant time.
func VerifyPassword(digest string, password string) error {
	return bcrypt.CompareHashAndPassword(
		[]byte(digest),
		[]byte(password),
	)
}
