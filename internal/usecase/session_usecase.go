package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// SessionUsecase resolves session tokens to identities.
type SessionUsecase interface {
	// Authenticate verifies token and loads the identity it names. Every
	// failure is reported as domainerrors.ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
