package auth

import (
	"context"
	"slices"
	"strings"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	"authgate/internal/infra/auth/github"
	"authgate/internal/infra/auth/google"

	"github.com/pkg/errors"
)

// credentialsDescriptor is the form-based method. Its fields are what the sign-in page renders.
var credentialsDescriptor = entity.ProviderDescriptor{
	ID:   entity.ProviderTypeCredentials,
	Name: "Credentials",
	Kind: entity.ProviderKindCredentials,
	Credentials: []entity.CredentialField{
		{Name: "identifier", Label: "Username or Email", Type: "text"},
		{Name: "password", Label: "Password", Type: "password"},
	},
}

// providerRegistry is the fixed set of sign-in methods built at startup.
type providerRegistry struct {
	descriptors []entity.ProviderDescriptor
	oauth       map[entity.ProviderType]service.OAuthProvider
}

// NewProviderRegistry builds the credentials, GitHub and Google methods. A missing OAuth
// client id or secret fails construction with ErrProviderMisconfigured.
func NewProviderRegistry(ctx context.Context, cfg *config.Config) (service.ProviderRegistry, error) {
	var missing []string
	if cfg.Providers.GitHub.ClientID == "" || cfg.Providers.GitHub.ClientSecret == "" {
		missing = append(missing, "github")
	}
	if cfg.Providers.Google.ClientID == "" || cfg.Providers.Google.ClientSecret == "" {
		missing = append(missing, "google")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrProviderMisconfigured.WithDetails("missing client id or secret for " + strings.Join(missing, ", "))
	}

	gh, err := github.NewProvider(cfg.Providers.GitHub)
	if err != nil {
		return nil, errors.Wrap(err, "github provider")
	}

	gg, err := google.NewProvider(ctx, cfg.Providers.Google)
	if err != nil {
		return nil, errors.Wrap(err, "google provider")
	}

	return newProviderRegistry(gh, gg), nil
}

func newProviderRegistry(oauthProviders ...service.OAuthProvider) *providerRegistry {
	r := &providerRegistry{
		descriptors: []entity.ProviderDescriptor{credentialsDescriptor},
		oauth:       make(map[entity.ProviderType]service.OAuthProvider, len(oauthProviders)),
	}

	for _, p := range oauthProviders {
		r.descriptors = append(r.descriptors, entity.ProviderDescriptor{
			ID:   p.Provider(),
			Name: displayName(p.Provider()),
			Kind: entity.ProviderKindOAuth,
		})
		r.oauth[p.Provider()] = p
	}

	return r
}

// Providers returns a copy; callers may not mutate the registry.
func (r *providerRegistry) Providers() []entity.ProviderDescriptor {
	out := make([]entity.ProviderDescriptor, len(r.descriptors))
	for i, d := range r.descriptors {
		d.Credentials = slices.Clone(d.Credentials)
		out[i] = d
	}

	return out
}

// OAuth returns the OAuth client for provider.
func (r *providerRegistry) OAuth(provider entity.ProviderType) (service.OAuthProvider, error) {
	p, ok := r.oauth[provider]
	if !ok {
		return nil, domainerrors.ErrProviderNotFound.WithDetails(provider.String())
	}

	return p, nil
}

func displayName(p entity.ProviderType) string {
	switch p {
	case entity.ProviderTypeGitHub:
		return "GitHub"
	case entity.ProviderTypeGoogle:
		return "Google"
	default:
		return p.String()
	}
}
