package usecase

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
)

// --- Input DTOs ---

// OAuthSignInInput carries the grant a client obtained from an OAuth provider.
// Code is an authorization code; IDToken is a raw OpenID Connect ID token (Google only).
type OAuthSignInInput struct {
	Provider entity.ProviderType
	Code     string
	IDToken  string
}

// --- Output DTOs ---

// SignInOutput is the issued session.
type SignInOutput struct {
	Token   string
	Expires time.Time
	Session *entity.SessionView
}

// SessionConfiguration is the public authentication configuration.
type SessionConfiguration struct {
	Providers  []entity.ProviderDescriptor
	SignInPage string
	Strategy   string
	MaxAge     time.Duration
}

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	SignInWithCredentials(ctx context.Context, creds entity.Credentials) (*SignInOutput, error)
	SignInWithOAuth(ctx context.Context, input OAuthSignInInput) (*SignInOutput, error)
	// GetSession never fails on a bad token; it returns the default view instead.
	GetSession(ctx context.Context, rawToken string) (*entity.SessionView, error)
	RefreshSession(ctx context.Context, rawToken string) (*SignInOutput, error)
	SignOut(ctx context.Context, rawToken string) error
	CleanupExpiredSessions(ctx context.Context) (int, error)
	Configuration() SessionConfiguration
}
