// Package github signs users in with GitHub OAuth apps.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const defaultAPIBaseURL = "https://api.github.com"

var defaultScopes = []string{"read:user", "user:email"}

// Provider exchanges GitHub authorization codes for user profiles.
type Provider struct {
	oauth2Config *oauth2.Config
	apiBaseURL   string
	httpClient   *http.Client
}

// Option customizes a Provider.
type Option func(*Provider)

// WithEndpoint overrides the authorization and token endpoints (GitHub Enterprise, tests).
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(p *Provider) {
		p.oauth2Config.Endpoint = endpoint
	}
}

// WithAPIBaseURL overrides the REST API root used for profile lookups.
func WithAPIBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.apiBaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the client used for the token exchange.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// NewProvider creates a GitHub provider. The client id and secret must be set.
func NewProvider(cfg config.OAuthClientConfig, opts ...Option) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, domainerrors.ErrProviderMisconfigured.WithDetails("github client id and secret are required")
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	p := &Provider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     github.Endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
		},
		apiBaseURL: defaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

var _ service.OAuthProvider = (*Provider)(nil)

// Provider returns the OAuth provider type
func (p *Provider) Provider() entity.ProviderType {
	return entity.ProviderTypeGitHub
}

// AuthCodeURL builds the GitHub consent URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

// Exchange trades code for an access token and reads the user's profile with it.
func (p *Provider) Exchange(ctx context.Context, code string) (*entity.OAuthProfile, error) {
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("authorization code is required")
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed.WithDetails(err.Error()), "github: failed to exchange code")
	}

	client := p.oauth2Config.Client(ctx, token)

	var user struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := p.getJSON(ctx, client, "/user", &user); err != nil {
		return nil, err
	}

	email := user.Email
	if email == "" {
		if email, err = p.primaryEmail(ctx, client); err != nil {
			return nil, err
		}
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return &entity.OAuthProfile{
		Provider:       entity.ProviderTypeGitHub,
		ProviderUserID: fmt.Sprintf("%d", user.ID),
		Email:          email,
		Name:           name,
		AvatarURL:      user.AvatarURL,
	}, nil
}

// primaryEmail returns the primary verified address when the public profile hides it.
func (p *Provider) primaryEmail(ctx context.Context, client *http.Client) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := p.getJSON(ctx, client, "/user/emails", &emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}

	return "", domainerrors.ErrOAuthFailed.WithDetails("github account has no verified primary email")
}

func (p *Provider) getJSON(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "github: failed to create request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(domainerrors.ErrOAuthFailed.WithDetails(err.Error()), "github: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return domainerrors.ErrOAuthFailed.WithDetails(fmt.Sprintf("github %s returned %d: %s", path, resp.StatusCode, body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "github: failed to decode %s", path)
	}

	return nil
}
