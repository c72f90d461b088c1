package credentials

import (
	"context"
	"errors"
)

// ErrInvalidCredentials hides whether the username existed or the
// password was wrong.
var ErrInvalidCredentials = errors.New("credentials: invalid credentials")

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register hashes the password and stores the credential. The plaintext
// is discarded; only the digest is ever persisted.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
) (Credential, error) {

	digest, err := HashPassword(password)
	if err != nil {
		return Credential{}, err
	}

	return s.store.Add(ctx, Credential{
		Username:       username,
		PasswordDigest: digest,
	})
}

// Authenticate succeeds iff a credential exists for username and the
// password verifies against its digest. A missing record and a failed
// verification both come back as ErrInvalidCredentials; anything else is
// an infrastructure error.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (Credential, error) {

	cred, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return Credential{}, ErrInvalidCredentials
	}
	if err != nil {
		return Credential{}, err
	}

	if err := VerifyPassword(cred.PasswordDigest, password); err != nil {
		return Credential{}, ErrInvalidCredentials
	}

	return cred, nil
}

// List returns all stored credentials, digests excluded on the way out
// by the model's JSON tags.
func (s *Service) List(ctx context.Context) ([]Credential, error) {
	return s.store.List(ctx)
}
