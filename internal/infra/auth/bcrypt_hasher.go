// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// bcrypt ignores input past 72 bytes, and newer x/crypto rejects it outright.
const bcryptMaxInput = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with DefaultBcryptCost.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(DefaultBcryptCost)
}

// NewBcryptHasherWithCost returns a hasher with the given work factor.
// A cost outside bcrypt's accepted range falls back to DefaultBcryptCost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash using bcrypt. bcrypt handles salt generation.
func (h *bcryptHasher) Hash(password entity.PlainPassword) (entity.PasswordHash, error) {
	bytes, err := bcrypt.GenerateFromPassword(bcryptInput(string(password)), h.cost)
	if err != nil {
		return "", err
	}

	return entity.PasswordHash(bytes), nil
}

// Check compares a candidate with a bcrypt hash.
func (h *bcryptHasher) Check(candidate string, hash entity.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(candidate))

	return err == nil
}

// bcryptInput pre-hashes passwords longer than bcrypt accepts so every
// character still contributes to the digest.
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}

	sum := sha256.Sum256([]byte(password))

	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
