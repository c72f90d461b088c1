package session

import (
	"context"
	"time"
)

// Record is the durable, server-side half of a session. The cookie only
// ever carries the (signed) ID; everything else lives in the store.
type Record struct {
	ID        string         `json:"id"`
	ExpiresAt time.Time      `json:"expires_at"`
	Data      map[string]any `json:"data"`
}

// Store persists session records keyed by session ID. Implementations own
// expiry: a record past its TTL must eventually disappear without the
// middleware running its own sweep.
type Store interface {
	// Load returns the record for id, or (nil, nil) when none exists.
	Load(ctx context.Context, id string) (*Record, error)
	Save(ctx context.Context, rec Record, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}
