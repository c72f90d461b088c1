package credentials

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindByUsername when no credential exists
// for the given username. Store infrastructure failures are returned
// as-is so callers can tell the two apart.
var ErrNotFound = errors.New("credentials: not found")

// Store persists credential records. Usernames are unique and immutable
// after creation; records are never updated or deleted.
type Store interface {
	Add(ctx context.Context, cred Credential) (Credential, error)
	FindByUsername(ctx context.Context, username string) (Credential, error)
	List(ctx context.Context) ([]Credential, error)
}
