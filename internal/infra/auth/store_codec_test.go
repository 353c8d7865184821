package auth

import (
	"context"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storeConfig() config.SessionConfig {
	return config.SessionConfig{Strategy: config.SessionStrategyDatabase, MaxAge: time.Hour}
}

func TestStoreSessionCodec_EncodePersistsHashOnly(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := mockRepo.NewMockSessionRepository(t)

	codec, err := newStoreSessionCodec(storeConfig(), sessions, fixedClock(now))
	require.NoError(t, err)

	var stored *repository.StoredSession
	sessions.EXPECT().
		Create(ctx, mock.AnythingOfType("*repository.StoredSession")).
		Run(func(_ context.Context, session *repository.StoredSession) { stored = session }).
		Return(nil)

	token := &entity.SessionToken{UserID: "u-1", Username: "alice", Verified: true, Provider: entity.ProviderTypeCredentials}
	raw, err := codec.Encode(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEmpty(t, raw)
	assert.NotEqual(t, raw, stored.TokenHash)
	assert.Equal(t, hashSessionToken(raw), stored.TokenHash)
	assert.Equal(t, token.SessionID, stored.ID)
	assert.Equal(t, now.Add(time.Hour), stored.ExpiresAt)
	assert.Equal(t, "alice", stored.Token.Username)
	assert.Equal(t, now.Add(time.Hour), token.ExpiresAt)
}

func TestStoreSessionCodec_Decode(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	raw := "opaque-token"

	t.Run("valid", func(t *testing.T) {
		sessions := mockRepo.NewMockSessionRepository(t)
		codec, err := newStoreSessionCodec(storeConfig(), sessions, fixedClock(now))
		require.NoError(t, err)

		sessions.EXPECT().FindByTokenHash(ctx, hashSessionToken(raw)).Return(&repository.StoredSession{
			ID:        "s-1",
			Token:     entity.SessionToken{UserID: "u-1", Username: "alice", Verified: true},
			ExpiresAt: now.Add(time.Minute),
		}, nil)

		token, err := codec.Decode(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, "s-1", token.SessionID)
		assert.Equal(t, "alice", token.Username)
		assert.Equal(t, now.Add(time.Minute), token.ExpiresAt)
	})

	t.Run("unknown", func(t *testing.T) {
		sessions := mockRepo.NewMockSessionRepository(t)
		codec, err := newStoreSessionCodec(storeConfig(), sessions, fixedClock(now))
		require.NoError(t, err)

		sessions.EXPECT().FindByTokenHash(ctx, hashSessionToken(raw)).Return(nil, repository.ErrSessionNotFound)

		_, err = codec.Decode(ctx, raw)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("expired", func(t *testing.T) {
		sessions := mockRepo.NewMockSessionRepository(t)
		codec, err := newStoreSessionCodec(storeConfig(), sessions, fixedClock(now))
		require.NoError(t, err)

		sessions.EXPECT().FindByTokenHash(ctx, hashSessionToken(raw)).Return(&repository.StoredSession{
			ID:        "s-1",
			ExpiresAt: now,
		}, nil)

		_, err = codec.Decode(ctx, raw)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("store failure is not unauthorized", func(t *testing.T) {
		sessions := mockRepo.NewMockSessionRepository(t)
		codec, err := newStoreSessionCodec(storeConfig(), sessions, fixedClock(now))
		require.NoError(t, err)

		sessions.EXPECT().FindByTokenHash(ctx, hashSessionToken(raw)).Return(nil, errors.New("connection reset"))

		_, err = codec.Decode(ctx, raw)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestStoreSessionCodec_RenewAndRevoke(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := mockRepo.NewMockSessionRepository(t)

	codec, err := newStoreSessionCodec(storeConfig(), sessions, fixedClock(now))
	require.NoError(t, err)

	sessions.EXPECT().UpdateExpiry(ctx, hashSessionToken("raw"), now.Add(time.Hour)).Return(nil)
	sessions.EXPECT().DeleteByTokenHash(ctx, hashSessionToken("raw")).Return(nil)
	sessions.EXPECT().DeleteByTokenHash(ctx, hashSessionToken("gone")).Return(repository.ErrSessionNotFound)

	token := &entity.SessionToken{UserID: "u-1"}
	renewed, err := codec.Renew(ctx, "raw", token)
	require.NoError(t, err)
	assert.Equal(t, "raw", renewed)
	assert.Equal(t, now.Add(time.Hour), token.ExpiresAt)

	assert.NoError(t, codec.Revoke(ctx, "raw"))
	assert.NoError(t, codec.Revoke(ctx, "gone"))
	assert.NoError(t, codec.Revoke(ctx, ""))
	assert.Equal(t, config.SessionStrategyDatabase, codec.Strategy())
}

func TestNewStoreSessionCodec_RequiresRepository(t *testing.T) {
	_, err := NewStoreSessionCodec(&config.Config{Session: storeConfig()}, nil)
	assert.Error(t, err)
}
