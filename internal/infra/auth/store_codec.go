package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionTokenBytes = 32

// storeSessionCodec implements SessionCodec with opaque tokens whose hash is kept in the session store.
type storeSessionCodec struct {
	sessions repository.SessionRepository
	maxAge   time.Duration
	now      func() time.Time
}

// NewStoreSessionCodec is the constructor for storeSessionCodec.
func NewStoreSessionCodec(cfg *config.Config, sessions repository.SessionRepository) (service.SessionCodec, error) {
	return newStoreSessionCodec(cfg.Session, sessions, time.Now)
}

func newStoreSessionCodec(cfg config.SessionConfig, sessions repository.SessionRepository, now func() time.Time) (*storeSessionCodec, error) {
	if sessions == nil {
		return nil, errors.New("session repository is required for the database session strategy")
	}
	if cfg.MaxAge <= 0 {
		return nil, errors.New("session max age must be positive")
	}

	return &storeSessionCodec{sessions: sessions, maxAge: cfg.MaxAge, now: now}, nil
}

// hashSessionToken returns the hex SHA-256 of raw, the only form of the token that is persisted.
func hashSessionToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

func newOpaqueToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Encode stores a new session and returns its opaque token.
func (c *storeSessionCodec) Encode(ctx context.Context, token *entity.SessionToken) (string, error) {
	if token == nil {
		return "", errors.New("session token is nil")
	}

	raw, err := newOpaqueToken()
	if err != nil {
		return "", err
	}

	issuedAt := c.now()
	token.SessionID = uuid.NewString()
	token.IssuedAt = issuedAt
	token.ExpiresAt = issuedAt.Add(c.maxAge)

	if err := c.sessions.Create(ctx, &repository.StoredSession{
		ID:        token.SessionID,
		TokenHash: hashSessionToken(raw),
		Token:     *token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: issuedAt,
	}); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}

	return raw, nil
}

// Decode loads the session for raw. Unknown and expired sessions are unauthorized.
func (c *storeSessionCodec) Decode(ctx context.Context, raw string) (*entity.SessionToken, error) {
	if raw == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("missing session token")
	}

	stored, err := c.sessions.FindByTokenHash(ctx, hashSessionToken(raw))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized.WithDetails("unknown session"), "failed to load session")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if !c.now().Before(stored.ExpiresAt) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("session expired")
	}

	token := stored.Token
	token.SessionID = stored.ID
	token.ExpiresAt = stored.ExpiresAt

	return &token, nil
}

// Renew slides the expiry of the stored session forward; the opaque token is unchanged.
func (c *storeSessionCodec) Renew(ctx context.Context, raw string, token *entity.SessionToken) (string, error) {
	if token == nil {
		return "", errors.New("session token is nil")
	}

	expiresAt := c.now().Add(c.maxAge)
	if err := c.sessions.UpdateExpiry(ctx, hashSessionToken(raw), expiresAt); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", errors.Wrap(domainerrors.ErrUnauthorized.WithDetails("unknown session"), "failed to renew session")
		}

		return "", errors.Wrap(err, "failed to renew session")
	}

	token.ExpiresAt = expiresAt

	return raw, nil
}

// Revoke deletes the stored session. Revoking an unknown session succeeds.
func (c *storeSessionCodec) Revoke(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}

	err := c.sessions.DeleteByTokenHash(ctx, hashSessionToken(raw))
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

func (c *storeSessionCodec) Strategy() string {
	return config.SessionStrategyDatabase
}

func (c *storeSessionCodec) MaxAge() time.Duration {
	return c.maxAge
}
