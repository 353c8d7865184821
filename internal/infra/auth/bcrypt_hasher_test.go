package auth

import (
	"testing"

	"authgate/config"
	domainerrors "authgate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	ok, err := hasher.Compare("StrongPass123!", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Compare("WrongPassword123!", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_EmptyPasswordIsPlainMismatch(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	ok, err := hasher.Compare("", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, hash := range []string{"invalid_hash", "$2a$99$abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz12"} {
		ok, err := hasher.Compare("StrongPass123!", hash)
		assert.False(t, ok, "hash %q", hash)
		require.Error(t, err, "hash %q", hash)
		assert.True(t, errors.Is(err, domainerrors.ErrMalformedHash), "hash %q", hash)
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials), "hash %q", hash)
	}
}

func TestBcryptHasher_EmptyHashMatchesNothing(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, password := range []string{"", "StrongPass123!"} {
		ok, err := hasher.Compare(password, "")
		assert.False(t, ok)
		assert.NoError(t, err)
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	h, ok := NewBcryptHasherWithCost(1).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, h.cost)

	h, ok = NewBcryptHasher(nil).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
