package credentials

import "time"

// Credential is a stored username/digest pair. The digest never leaves
// the server: it is excluded from JSON responses.
type Credential struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
