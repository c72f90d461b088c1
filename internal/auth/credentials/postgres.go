package credentials

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/skirkby/node-auth2-guided-sessions/internal/db"
)

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Add(ctx context.Context, cred Credential) (Credential, error) {

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_digest)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, cred.Username, cred.PasswordDigest).Scan(&id, &cred.CreatedAt)

	if err != nil {
		return Credential{}, err
	}

	cred.ID = id.String()
	return cred, nil
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (Credential, error) {

	var (
		id   uuid.UUID
		cred Credential
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_digest, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&id, &cred.Username, &cred.PasswordDigest, &cred.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Credential{}, ErrNotFound
	}
	if err != nil {
		return Credential{}, err
	}

	cred.ID = id.String()
	return cred, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Credential, error) {

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []Credential
	for rows.Next() {
		var (
			id   uuid.UUID
			cred Credential
		)
		if err := rows.Scan(&id, &cred.Username, &cred.CreatedAt); err != nil {
			return nil, err
		}
		cred.ID = id.String()
		creds = append(creds, cred)
	}

	return creds, rows.Err()
}
