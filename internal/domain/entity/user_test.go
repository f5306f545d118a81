package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_AcceptsTokenIssuedAt(t *testing.T) {
	cutoff := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no cutoff accepts everything", func(t *testing.T) {
		user := &User{}

		assert.True(t, user.AcceptsTokenIssuedAt(cutoff.Add(-24*time.Hour)))
	})

	t.Run("cutoff", func(t *testing.T) {
		user := &User{TokensInvalidBefore: cutoff}

		assert.False(t, user.AcceptsTokenIssuedAt(cutoff.Add(-time.Second)))
		assert.True(t, user.AcceptsTokenIssuedAt(cutoff))
		assert.True(t, user.AcceptsTokenIssuedAt(cutoff.Add(time.Second)))
	})
}

func TestOwnerID(t *testing.T) {
	userID := uuid.New()

	assert.Equal(t, userID, (&User{ID: userID}).OwnerID())
	assert.Equal(t, userID, (&Blog{ID: uuid.New(), CreatorID: userID}).OwnerID())
}

func TestPlainPassword_Redacted(t *testing.T) {
	password := PlainPassword("Secret123!")

	assert.Equal(t, "[REDACTED]", fmt.Sprint(password))
	assert.NotContains(t, fmt.Sprintf("%v", struct{ P PlainPassword }{password}), "Secret")
}
