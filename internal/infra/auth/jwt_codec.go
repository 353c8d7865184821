package auth

import (
	"context"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MinSecretLength is the shortest HMAC secret accepted for signing session tokens.
const MinSecretLength = 32

// sessionClaims is the JWT body of a client-held session.
type sessionClaims struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Verified bool   `json:"isVerified"`
	Provider string `json:"provider,omitempty"`
	jwt.RegisteredClaims
}

// jwtSessionCodec is a concrete implementation of the SessionCodec interface using HS256 JWTs.
type jwtSessionCodec struct {
	secret []byte
	issuer string
	maxAge time.Duration
	now    func() time.Time
}

// NewJWTSessionCodec is the constructor for jwtSessionCodec.
func NewJWTSessionCodec(cfg *config.Config) (service.SessionCodec, error) {
	return newJWTSessionCodec(cfg.Session, time.Now)
}

func newJWTSessionCodec(cfg config.SessionConfig, now func() time.Time) (*jwtSessionCodec, error) {
	if len(cfg.Secret) < MinSecretLength {
		return nil, errors.Errorf("session secret must be at least %d characters", MinSecretLength)
	}
	if cfg.MaxAge <= 0 {
		return nil, errors.New("session max age must be positive")
	}

	return &jwtSessionCodec{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		maxAge: cfg.MaxAge,
		now:    now,
	}, nil
}

// Encode signs token. IssuedAt and ExpiresAt on token are overwritten with the issued values.
func (c *jwtSessionCodec) Encode(_ context.Context, token *entity.SessionToken) (string, error) {
	if token == nil {
		return "", errors.New("session token is nil")
	}

	issuedAt := c.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(c.maxAge)

	claims := sessionClaims{
		ID:       token.UserID,
		Username: token.Username,
		Email:    token.Email,
		Verified: token.Verified,
		Provider: token.Provider.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   token.UserID,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	token.IssuedAt = issuedAt
	token.ExpiresAt = expiresAt

	return signed, nil
}

// Decode verifies the signature, issuer and expiry of raw.
func (c *jwtSessionCodec) Decode(_ context.Context, raw string) (*entity.SessionToken, error) {
	if raw == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("missing session token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	claims := &sessionClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized.WithDetails(err.Error()), "failed to parse session token")
	}

	token := &entity.SessionToken{
		UserID:   claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
		Verified: claims.Verified,
		Provider: entity.ProviderType(claims.Provider),
	}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}

	return token, nil
}

// Renew signs a fresh token. The previous one stays valid until it expires.
func (c *jwtSessionCodec) Renew(ctx context.Context, _ string, token *entity.SessionToken) (string, error) {
	return c.Encode(ctx, token)
}

// Revoke is a no-op: client-held tokens cannot be withdrawn before expiry.
func (c *jwtSessionCodec) Revoke(context.Context, string) error {
	return nil
}

func (c *jwtSessionCodec) Strategy() string {
	return config.SessionStrategyJWT
}

func (c *jwtSessionCodec) MaxAge() time.Duration {
	return c.maxAge
}
