package auth

import (
	"strings"
	"testing"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	password := entity.PlainPassword("StrongPass123!")
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, string(password), string(hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)

	assert.True(t, hasher.Check(string(password), hash))
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	second, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := entity.PlainPassword("StrongPass123!")

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("strongpass123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_LongPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	base := strings.Repeat("Aa1!", 20) // 80 characters, past bcrypt's 72-byte input
	hash, err := hasher.Hash(entity.PlainPassword(base + "x"))
	require.NoError(t, err)

	assert.True(t, hasher.Check(base+"x", hash))
	assert.False(t, hasher.Check(base+"y", hash), "characters past 72 bytes must still matter")
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
	}{
		{name: "custom", cost: 6, wantCost: 6},
		{name: "below minimum", cost: 1, wantCost: DefaultBcryptCost},
		{name: "above maximum", cost: 40, wantCost: DefaultBcryptCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasherWithCost(tt.cost)

			hash, err := hasher.Hash("StrongPass123!")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}
