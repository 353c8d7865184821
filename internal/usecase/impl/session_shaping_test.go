package impl

import (
	"testing"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEnrichToken(t *testing.T) {
	id := uuid.New()
	user := &entity.User{ID: id, Username: "alice", Email: "alice@example.com", Verified: true}

	t.Run("credentials event omits email", func(t *testing.T) {
		token := enrichToken(&entity.SessionToken{}, &entity.AuthEvent{User: user, Provider: entity.ProviderTypeCredentials})

		assert.Equal(t, id.String(), token.UserID)
		assert.Equal(t, "alice", token.Username)
		assert.True(t, token.Verified)
		assert.Empty(t, token.Email)
		assert.Equal(t, entity.ProviderTypeCredentials, token.Provider)
	})

	t.Run("oauth event carries email and is verified", func(t *testing.T) {
		unverified := &entity.User{ID: id, Username: "alice", Email: "alice@example.com", Verified: false}
		token := enrichToken(nil, &entity.AuthEvent{User: unverified, Provider: entity.ProviderTypeGoogle})

		assert.Equal(t, "alice@example.com", token.Email)
		assert.True(t, token.Verified)
	})

	t.Run("no event keeps stored fields", func(t *testing.T) {
		stored := &entity.SessionToken{UserID: "u-1", Username: "bob", Email: "bob@example.com", Verified: true}
		before := *stored

		token := enrichToken(stored, nil)

		assert.Same(t, stored, token)
		assert.Equal(t, before, *token)
	})

	t.Run("event without user is a no-op", func(t *testing.T) {
		stored := &entity.SessionToken{UserID: "u-1"}
		assert.Equal(t, "u-1", enrichToken(stored, &entity.AuthEvent{Provider: entity.ProviderTypeGitHub}).UserID)
	})
}

func TestProjectSession(t *testing.T) {
	t.Run("overwrites identity fields", func(t *testing.T) {
		view := &entity.SessionView{User: entity.SessionUser{ID: "stale", Username: "stale", Verified: true, Name: "Kept", Email: "kept@example.com"}}
		token := &entity.SessionToken{UserID: "u-1", Username: "alice", Verified: false, Email: "other@example.com"}

		got := projectSession(view, token)

		assert.Equal(t, "u-1", got.User.ID)
		assert.Equal(t, "alice", got.User.Username)
		assert.False(t, got.User.Verified)
		assert.Equal(t, "Kept", got.User.Name)
		assert.Equal(t, "kept@example.com", got.User.Email)
	})

	t.Run("absent token leaves view unchanged", func(t *testing.T) {
		view := &entity.SessionView{User: entity.SessionUser{Name: "Default"}}
		before := *view

		got := projectSession(view, nil)

		assert.Equal(t, before, *got)
	})
}

func TestSessionViewOf_MirrorsToken(t *testing.T) {
	id := uuid.New()
	user := &entity.User{ID: id, Username: "jane", Email: "jane@x.com"}
	token := enrichToken(nil, &entity.AuthEvent{User: user, Provider: entity.ProviderTypeGitHub})

	view := sessionViewOf(token)

	assert.Equal(t, token.UserID, view.User.ID)
	assert.Equal(t, token.Username, view.User.Username)
	assert.Equal(t, token.Verified, view.User.Verified)
	assert.Equal(t, token.Email, view.User.Email)
	assert.Nil(t, view.Expires)
}
