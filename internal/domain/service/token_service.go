package service

import (
	"errors"
	"time"

	"blog/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failures. Callers log them and answer the client with
// the same unauthenticated error regardless of which one occurred.
var (
	ErrTokenMalformed = errors.New("session token malformed")
	ErrTokenSignature = errors.New("session token signature invalid")
	ErrTokenExpired   = errors.New("session token expired")
)

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	UserID uuid.UUID `json:"-"`
	Admin  bool      `json:"admin"`
	jwt.RegisteredClaims
}

// IssuedAtTime returns the issued-at claim or the zero time when absent.
func (c *SessionClaims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}

	return c.IssuedAt.Time
}

// IssuedToken is a freshly minted session token.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// Issue mints a token for user carrying its ID and admin flag.
	Issue(user *entity.User) (*IssuedToken, error)

	// Verify checks the signature first and expiry second.
	Verify(token string) (*SessionClaims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
