// Package google signs users in with Google, either through the authorization code flow
// or from an ID token obtained on the client.
package google

import (
	"context"
	"net/http"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// Issuer is the OpenID Connect issuer of Google ID tokens.
	Issuer  = "https://accounts.google.com"
	certURL = "https://www.googleapis.com/oauth2/v3/certs"
)

// Provider handles Google OAuth infrastructure operations
type Provider struct {
	oauth2Config *oauth2.Config
	verifier     *oidc.IDTokenVerifier
	httpClient   *http.Client
}

type options struct {
	endpoint   *oauth2.Endpoint
	keySet     oidc.KeySet
	httpClient *http.Client
}

// Option customizes a Provider.
type Option func(*options)

// WithEndpoint overrides the authorization and token endpoints.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(o *options) {
		o.endpoint = &endpoint
	}
}

// WithKeySet replaces Google's published signing keys, which are fetched lazily otherwise.
func WithKeySet(keySet oidc.KeySet) Option {
	return func(o *options) {
		o.keySet = keySet
	}
}

// WithHTTPClient sets the client used for the token exchange and key fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// NewProvider creates a Google provider. No network call is made until the first sign-in.
func NewProvider(ctx context.Context, cfg config.OAuthClientConfig, opts ...Option) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, domainerrors.ErrProviderMisconfigured.WithDetails("google client id and secret are required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	endpoint := google.Endpoint
	if o.endpoint != nil {
		endpoint = *o.endpoint
	}

	keySet := o.keySet
	if keySet == nil {
		keyCtx := context.WithoutCancel(ctx)
		if o.httpClient != nil {
			keyCtx = oidc.ClientContext(keyCtx, o.httpClient)
		}
		keySet = oidc.NewRemoteKeySet(keyCtx, certURL)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}

	return &Provider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
		},
		verifier:   oidc.NewVerifier(Issuer, keySet, &oidc.Config{ClientID: cfg.ClientID}),
		httpClient: o.httpClient,
	}, nil
}

var (
	_ service.OAuthProvider   = (*Provider)(nil)
	_ service.IDTokenVerifier = (*Provider)(nil)
)

// Provider returns the OAuth provider type
func (p *Provider) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// AuthCodeURL builds the Google consent URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

// Exchange trades code for tokens and reads the profile from the returned ID token.
func (p *Provider) Exchange(ctx context.Context, code string) (*entity.OAuthProfile, error) {
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("authorization code is required")
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed.WithDetails(err.Error()), "google: failed to exchange code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("no id_token in token response")
	}

	return p.VerifyIDToken(ctx, rawIDToken)
}

// VerifyIDToken checks signature, issuer, audience and expiry of rawIDToken.
// Tokens for unverified email addresses are rejected.
func (p *Provider) VerifyIDToken(ctx context.Context, rawIDToken string) (*entity.OAuthProfile, error) {
	if rawIDToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("id token is required")
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed.WithDetails(err.Error()), "google: failed to verify id token")
	}

	var claims struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed.WithDetails(err.Error()), "google: failed to parse claims")
	}

	if claims.Email == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("google account has no email")
	}
	if !claims.EmailVerified {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("google email is not verified")
	}

	return &entity.OAuthProfile{
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: claims.Sub,
		Email:          claims.Email,
		Name:           claims.Name,
		AvatarURL:      claims.Picture,
	}, nil
}
