package repository

import (
	"context"
	"errors"
	"time"

	"authgate/internal/domain/entity"
)

// ErrSessionNotFound is returned when no stored session matches a token hash.
var ErrSessionNotFound = errors.New("session not found")

// StoredSession is a server-held session row. Only the SHA-256 of the opaque token is kept.
type StoredSession struct {
	ID        string
	TokenHash string
	Token     entity.SessionToken
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionRepository persists sessions for the "database" session strategy.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *StoredSession) error

	// FindByTokenHash retrieves a session by the hash of its opaque token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*StoredSession, error)

	// UpdateExpiry moves the expiry of an existing session.
	UpdateExpiry(ctx context.Context, tokenHash string, expiresAt time.Time) error

	// DeleteByTokenHash removes a session, effectively signing the user out.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes every session whose expiry is before now and reports how many went.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
