package service

import (
	"context"

	"authgate/internal/domain/entity"
)

// OAuthProvider exchanges a provider grant for the signed-in user's profile.
// The browser redirect and its state parameter are owned by the caller.
type OAuthProvider interface {
	// Provider returns the OAuth provider type
	Provider() entity.ProviderType

	// AuthCodeURL builds the consent URL for the caller-supplied state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the user's profile.
	Exchange(ctx context.Context, code string) (*entity.OAuthProfile, error)
}

// IDTokenVerifier is implemented by providers that accept a raw OpenID Connect ID token.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, rawIDToken string) (*entity.OAuthProfile, error)
}
