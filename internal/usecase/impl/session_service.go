package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate resolves a session token. The concrete rejection reason is
// only logged; callers always get ErrUnauthenticated.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, srv.reject(ctx, "missing token", nil)
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, srv.reject(ctx, "invalid token", err)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, srv.reject(ctx, "identity missing", err, slog.Any("userID", claims.UserID))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	if !user.AcceptsTokenIssuedAt(claims.IssuedAtTime()) {
		return nil, srv.reject(ctx, "token revoked", nil, slog.Any("userID", user.ID))
	}

	return user, nil
}

func (srv *sessionService) reject(ctx context.Context, reason string, cause error, attrs ...any) error {
	args := append([]any{slog.String("reason", reason)}, attrs...)
	if cause != nil {
		args = append(args, slog.Any("error", cause))
	}
	srv.log(ctx).Debug("Session rejected", args...)

	return errors.Wrap(domainerrors.ErrUnauthenticated, reason)
}
