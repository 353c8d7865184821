package auth

import (
	"context"
	"testing"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryConfig() *config.Config {
	return &config.Config{
		Providers: config.ProvidersConfig{
			GitHub: config.OAuthClientConfig{ClientID: "gh-id", ClientSecret: "gh-secret"},
			Google: config.OAuthClientConfig{ClientID: "gg-id", ClientSecret: "gg-secret"},
		},
	}
}

func TestNewProviderRegistry(t *testing.T) {
	registry, err := NewProviderRegistry(context.Background(), registryConfig())
	require.NoError(t, err)

	providers := registry.Providers()
	require.Len(t, providers, 3)

	assert.Equal(t, entity.ProviderTypeCredentials, providers[0].ID)
	assert.Equal(t, entity.ProviderKindCredentials, providers[0].Kind)
	require.Len(t, providers[0].Credentials, 2)
	assert.Equal(t, "identifier", providers[0].Credentials[0].Name)
	assert.Equal(t, "password", providers[0].Credentials[1].Name)
	assert.Equal(t, "password", providers[0].Credentials[1].Type)

	assert.Equal(t, entity.ProviderTypeGitHub, providers[1].ID)
	assert.Equal(t, "GitHub", providers[1].Name)
	assert.Equal(t, entity.ProviderKindOAuth, providers[1].Kind)
	assert.Equal(t, entity.ProviderTypeGoogle, providers[2].ID)

	gh, err := registry.OAuth(entity.ProviderTypeGitHub)
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderTypeGitHub, gh.Provider())

	_, err = registry.OAuth(entity.ProviderTypeCredentials)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotFound))
}

func TestNewProviderRegistry_FailsFastOnMissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{name: "github id", mutate: func(c *config.Config) { c.Providers.GitHub.ClientID = "" }, want: "github"},
		{name: "github secret", mutate: func(c *config.Config) { c.Providers.GitHub.ClientSecret = "" }, want: "github"},
		{name: "google secret", mutate: func(c *config.Config) { c.Providers.Google.ClientSecret = "" }, want: "google"},
		{
			name: "both",
			mutate: func(c *config.Config) {
				c.Providers.GitHub = config.OAuthClientConfig{}
				c.Providers.Google = config.OAuthClientConfig{}
			},
			want: "github, google",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := registryConfig()
			tt.mutate(cfg)

			registry, err := NewProviderRegistry(context.Background(), cfg)
			assert.Nil(t, registry)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrProviderMisconfigured))
			assert.Equal(t, domainerrors.CodeProviderMisconfigured, domainerrors.KindOf(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProviderRegistry_ProvidersIsACopy(t *testing.T) {
	registry, err := NewProviderRegistry(context.Background(), registryConfig())
	require.NoError(t, err)

	first := registry.Providers()
	first[0].Name = "changed"
	first[0].Credentials[0].Name = "changed"

	second := registry.Providers()
	assert.Equal(t, "Credentials", second[0].Name)
	assert.Equal(t, "identifier", second[0].Credentials[0].Name)
}
