// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	policy       service.PasswordPolicy
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	PasswordPolicy service.PasswordPolicy
	TokenService   service.TokenService
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		policy:       params.PasswordPolicy,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account. The password is validated and hashed
// exactly once; the email uniqueness check is repeated by the store's
// unique index so concurrent signups still produce a single account.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	plain, err := srv.policy.Validate(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "password rejected")
	}

	_, err = srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.NewConflictError("email"), "signup rejected")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := srv.hasher.Hash(plain)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:     input.Email,
		Password:  hash,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		JobTitle:  strings.TrimSpace(input.JobTitle),
		Avatar:    strings.TrimSpace(input.Avatar),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.AccountRegistered, user)
	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{User: user, Token: token}, nil
}

// Login checks credentials. Unknown email and wrong password are reported
// with the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login user")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{User: user, Token: token}, nil
}

// GetUser loads a single account.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies a partial profile update. Only the account itself may
// edit it; admin status is never touched. A password change revokes every
// token issued before it and returns a replacement token.
func (srv *userService) UpdateUser(
	ctx context.Context,
	subject *entity.User,
	targetID uuid.UUID,
	input *usecase.UpdateUserInput,
) (*usecase.UpdateUserOutput, error) {
	srv.log(ctx).Debug("Updating user", slog.Any("userID", targetID))

	var (
		updated         *entity.User
		passwordChanged bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		target, err := userRepo.FindByID(ctx, targetID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "update user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if subject == nil || !service.IsOwner(subject.ID, target) {
			return errors.Wrap(domainerrors.ErrForbidden, "user may only update its own account")
		}

		applyUserChanges(target, input)

		if input.Password != nil {
			if err := srv.changePassword(target, *input.Password); err != nil {
				return err
			}
			passwordChanged = true
		}

		if err := userRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = target

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.Any("userID", targetID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	output := &usecase.UpdateUserOutput{User: updated}
	if passwordChanged {
		srv.log(ctx).Info("Password changed, earlier sessions revoked", slog.Any("userID", updated.ID))

		output.Token, err = srv.issueToken(ctx, updated)
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

func (srv *userService) changePassword(user *entity.User, candidate string) error {
	plain, err := srv.policy.Validate(candidate)
	if err != nil {
		return errors.Wrap(err, "password rejected")
	}

	hash, err := srv.hasher.Hash(plain)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user.Password = hash
	// Token iat has second precision, so the cutoff is the next whole second:
	// every earlier token is dated before it, and tokens issued from now on
	// are dated at or after it.
	user.TokensInvalidBefore = srv.now().Truncate(time.Second).Add(time.Second)

	return nil
}

func applyUserChanges(user *entity.User, input *usecase.UpdateUserInput) {
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.JobTitle != nil {
		user.JobTitle = strings.TrimSpace(*input.JobTitle)
	}
	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
	}
}

// DeleteAccount removes subject and every blog it created in one transaction.
func (srv *userService) DeleteAccount(ctx context.Context, subject *entity.User) error {
	if subject == nil {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "delete account")
	}

	srv.log(ctx).Info("Deleting account", slog.Any("userID", subject.ID))

	var removedBlogs int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		removedBlogs, err = repoFactory.NewBlogRepository().DeleteByCreator(ctx, subject.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete blogs of user")
		}

		err = repoFactory.NewUserRepository().Delete(ctx, subject.ID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "delete account")
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", subject.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.publish(ctx, service.AccountDeleted, subject)
	srv.log(ctx).Debug("Account deleted", slog.Any("userID", subject.ID), slog.Int64("blogs", removedBlogs))

	return nil
}

// ListUsers returns one page of accounts. An empty page is not an error.
func (srv *userService) ListUsers(ctx context.Context, page entity.Page) (*entity.PageResult[*entity.User], error) {
	result, err := srv.userRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return result, nil
}

// SearchUsers returns accounts matching term; no match is ErrNoSearchResults.
func (srv *userService) SearchUsers(ctx context.Context, term string, page entity.Page) (*entity.PageResult[*entity.User], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domainerrors.NewValidationError("term", "is required")
	}

	result, err := srv.userRepo.Search(ctx, term, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}
	if result.Total == 0 {
		return nil, errors.Wrapf(domainerrors.ErrNoSearchResults, "no users match %q", term)
	}

	return result, nil
}

func (srv *userService) issueToken(ctx context.Context, user *entity.User) (*service.IssuedToken, error) {
	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}

// publish emits an account event. Failures are logged and swallowed: the
// account change has already been committed.
func (srv *userService) publish(ctx context.Context, eventType service.AccountEventType, user *entity.User) {
	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     user.ID.String(),
		Email:      user.Email,
		FirstName:  user.FirstName,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}
