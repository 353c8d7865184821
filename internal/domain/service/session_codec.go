package service

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
)

// SessionCodec turns session tokens into the string handed to clients and back.
type SessionCodec interface {
	// Encode issues the client-facing form of token. Expiry and issue time are stamped by the codec.
	Encode(ctx context.Context, token *entity.SessionToken) (string, error)

	// Decode validates raw and returns the token it carries.
	Decode(ctx context.Context, raw string) (*entity.SessionToken, error)

	// Renew extends the lifetime of raw, returning the string the client should hold from now on.
	// token carries the identity fields to keep.
	Renew(ctx context.Context, raw string, token *entity.SessionToken) (string, error)

	// Revoke invalidates raw where the strategy supports it.
	Revoke(ctx context.Context, raw string) error

	// Strategy names the session strategy ("jwt" or "database").
	Strategy() string

	// MaxAge is the lifetime given to each issued token.
	MaxAge() time.Duration
}
