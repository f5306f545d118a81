// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity: a registered account that can author blogs.
type User struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email     string       // Login identifier, stored trimmed and lowercased.
	Password  PasswordHash // Never the plaintext.
	FirstName string
	LastName  string
	JobTitle  string
	Avatar    string // Reference to an avatar image.
	Admin     bool   // Only settable out of band, never through profile edits.
	// TokensInvalidBefore rejects session tokens issued before this instant.
	// Zero means every unexpired token is accepted.
	TokensInvalidBefore time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// OwnerID implements Owned: an account is owned by itself.
func (u *User) OwnerID() uuid.UUID {
	return u.ID
}

// AcceptsTokenIssuedAt reports whether a token minted at issuedAt is still honoured.
func (u *User) AcceptsTokenIssuedAt(issuedAt time.Time) bool {
	if u.TokensInvalidBefore.IsZero() {
		return true
	}

	return !issuedAt.Before(u.TokensInvalidBefore)
}
