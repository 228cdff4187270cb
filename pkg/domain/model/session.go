package model

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps the username of the authenticated principal keyed by an
// opaque token. Expiry is the store's own concern.
type SessionStore interface {
	Put(ctx context.Context, token, username string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
