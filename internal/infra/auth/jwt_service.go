// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is how long a session token stays valid.
const DefaultSessionTTL = 24 * time.Hour

// issuedAtLeeway admits tokens dated at a revocation cutoff that is still
// in the future.
const issuedAtLeeway = time.Second

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing session tokens.
	ttl    time.Duration    // Time-to-live for session tokens.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(secret string, ttl time.Duration) (service.TokenService, error) {
	return newJWTService(secret, ttl, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs a token whose subject is the user's ID. The iat claim never
// predates user.TokensInvalidBefore, which may lie up to a second ahead.
func (s *jwtService) Issue(user *entity.User) (*service.IssuedToken, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	issuedAt := now
	if issuedAt.Before(user.TokensInvalidBefore) {
		issuedAt = user.TokensInvalidBefore
	}

	claims := service.SessionClaims{
		Admin: user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign session token")
	}

	return &service.IssuedToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses tokenString, checking the signature before expiry.
// The returned error wraps one of the service.ErrToken* sentinels.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(issuedAtLeeway),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyJWTError(err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "subject is not a user id")
	}
	claims.UserID = userID

	return claims, nil
}

// TTL returns the lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Wrap(service.ErrTokenSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
