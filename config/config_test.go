package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: authgate
  log:
    level: debug
http:
  port: 8080
session:
  strategy: jwt
  secret: ""
  maxAge: 1h
providers:
  github:
    clientId: gh-id
    clientSecret: ""
  google:
    clientId: google-id
    clientSecret: google-secret
    scopes: [openid, email]
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PROVIDERS_GITHUB_CLIENTSECRET", "gh-secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "authgate", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, SessionStrategyJWT, cfg.Session.Strategy)
	assert.Equal(t, time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.Session.Secret)
	assert.Equal(t, "gh-id", cfg.Providers.GitHub.ClientID)
	assert.Equal(t, "gh-secret", cfg.Providers.GitHub.ClientSecret)
	assert.Equal(t, []string{"openid", "email"}, cfg.Providers.Google.Scopes)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, SessionStrategyJWT, cfg.Session.Strategy)
	assert.Equal(t, defaultSessionMaxAge, cfg.Session.MaxAge)
	assert.Equal(t, defaultSessionIssuer, cfg.Session.Issuer)
	assert.Equal(t, defaultCleanupInterval, cfg.Session.CleanupInterval)
	assert.Equal(t, "/signin", cfg.Pages.SignIn)
	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, defaultRateLimitBurst, cfg.RateLimit.Burst)
}

func TestConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Session.Strategy = SessionStrategyDatabase
	cfg.Session.MaxAge = time.Minute
	cfg.Pages.SignIn = "/login"
	cfg.applyDefaults()

	assert.Equal(t, SessionStrategyDatabase, cfg.Session.Strategy)
	assert.Equal(t, time.Minute, cfg.Session.MaxAge)
	assert.Equal(t, "/login", cfg.Pages.SignIn)
}
