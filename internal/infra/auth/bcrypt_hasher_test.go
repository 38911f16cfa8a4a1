package auth

import (
	"strings"
	"testing"

	"geekstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hasherWithCost(cost int) *bcryptHasher {
	return NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}).(*bcryptHasher)
}

func TestBcryptHasher_HashAndMatches(t *testing.T) {
	hasher := hasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, hasher.Matches("secreto123", hash))
	assert.False(t, hasher.Matches("otraClave", hash))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hash, err := hasherWithCost(bcrypt.MinCost).Hash("secreto123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, hasherWithCost(99).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
}

func TestBcryptHasher_EmptyHashNeverMatches(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Matches("", ""))
	assert.False(t, hasher.Matches("secreto123", ""))
}

func TestBcryptHasher_PasswordOverBcryptLimit(t *testing.T) {
	_, err := hasherWithCost(bcrypt.MinCost).Hash(strings.Repeat("a", 73))

	assert.Error(t, err)
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	weak, err := hasherWithCost(bcrypt.MinCost).Hash("secreto123")
	require.NoError(t, err)
	strong := hasherWithCost(bcrypt.MinCost + 1)

	assert.True(t, strong.NeedsRehash(weak))
	assert.False(t, hasherWithCost(bcrypt.MinCost).NeedsRehash(weak))
	assert.True(t, strong.NeedsRehash("not-a-bcrypt-hash"))
}
