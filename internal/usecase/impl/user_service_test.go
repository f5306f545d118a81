package impl

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:     "ada@example.com",
		Password:  "Password123!",
		FirstName: " Ada ",
		LastName:  "Lovelace",
	}
	token := &service.IssuedToken{Value: "signed", ExpiresAt: fixedNow.Add(24 * time.Hour)}
	newID := uuid.New()

	fx.policy.EXPECT().Validate(input.Password).Return(entity.PlainPassword(input.Password), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(entity.PlainPassword(input.Password)).Return(entity.PasswordHash("hashed"), nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == input.Email && u.Password == "hashed" && u.FirstName == "Ada" && !u.Admin
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = newID }).
		Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return(token, nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.AccountRegistered && e.UserID == newID.String() && e.OccurredAt.Equal(fixedNow)
		})).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, entity.PasswordHash("hashed"), output.User.Password)
	assert.Same(t, token, output.Token)
}

func TestUserService_Signup_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "short"}

	fx.policy.EXPECT().
		Validate(input.Password).
		Return("", domainerrors.NewValidationError("password", "must be at least 8 characters long"))

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "password", validationErr.Field)
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "Password123!"}

	fx.policy.EXPECT().Validate(input.Password).Return(entity.PlainPassword(input.Password), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.NewConflictError("email")))
}

func TestUserService_Signup_ConcurrentDuplicate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "Password123!"}

	fx.policy.EXPECT().Validate(input.Password).Return(entity.PlainPassword(input.Password), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(entity.PlainPassword(input.Password)).Return(entity.PasswordHash("hashed"), nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(domainerrors.NewConflictError("email"))

	_, err := fx.service.Signup(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.NewConflictError("email")))
}

func TestUserService_Signup_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "Password123!"}

	fx.policy.EXPECT().Validate(input.Password).Return(entity.PlainPassword(input.Password), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(entity.PlainPassword(input.Password)).Return(entity.PasswordHash("hashed"), nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return(&service.IssuedToken{Value: "signed"}, nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed", output.Token.Value)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Password: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("Password123!", user.Password).Return(true)
		fx.tokenService.EXPECT().Issue(user).Return(&service.IssuedToken{Value: "signed"}, nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

		require.NoError(t, err)
		assert.Equal(t, user, output.User)
		assert.Equal(t, "signed", output.Token.Value)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", user.Password).Return(false)

		_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "wrong"})
		_, mismatchErr := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

		require.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
		require.True(t, errors.Is(mismatchErr, domainerrors.ErrInvalidCredentials))
		assert.Equal(t, unknownErr.Error(), mismatchErr.Error())
	})

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(nil, errors.New("connection reset"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_UpdateUser_NotOwner(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	subject := &entity.User{ID: uuid.New()}
	target := &entity.User{ID: uuid.New(), FirstName: "Grace"}

	expectTransaction(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	})

	output, err := fx.service.UpdateUser(ctx, subject, target.ID, &usecase.UpdateUserInput{FirstName: strPtr("Mallory")})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.Equal(t, "Grace", target.FirstName)
}

func TestUserService_UpdateUser_TargetMissing(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	subject := &entity.User{ID: uuid.New()}
	targetID := uuid.New()

	expectTransaction(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.UpdateUser(ctx, subject, targetID, &usecase.UpdateUserInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser_ProfileOnly(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Password: "hashed", Admin: true}

	expectTransaction(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.JobTitle == "Analyst" && u.Admin && u.Password == "hashed" && u.TokensInvalidBefore.IsZero()
			})).
			Return(nil)
	})

	output, err := fx.service.UpdateUser(ctx, user, user.ID, &usecase.UpdateUserInput{JobTitle: strPtr(" Analyst ")})

	require.NoError(t, err)
	assert.Equal(t, "Analyst", output.User.JobTitle)
	assert.Nil(t, output.Token)
}

func TestUserService_UpdateUser_PasswordChangeRevokesSessions(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Password: "old-hash"}
	newPassword := "NewPassword1!"
	token := &service.IssuedToken{Value: "rotated"}

	expectTransaction(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.policy.EXPECT().Validate(newPassword).Return(entity.PlainPassword(newPassword), nil)
		fx.hasher.EXPECT().Hash(entity.PlainPassword(newPassword)).Return(entity.PasswordHash("new-hash"), nil)
		userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Password == "new-hash" && u.TokensInvalidBefore.Equal(fixedNow.Truncate(time.Second).Add(time.Second))
			})).
			Return(nil)
	})
	fx.tokenService.EXPECT().Issue(user).Return(token, nil)

	output, err := fx.service.UpdateUser(ctx, user, user.ID, &usecase.UpdateUserInput{Password: &newPassword})

	require.NoError(t, err)
	assert.Same(t, token, output.Token)
}

func TestUserService_UpdateUser_PasswordRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Password: "old-hash"}

	expectTransaction(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.policy.EXPECT().Validate("weak").Return("", domainerrors.NewValidationError("password", "too weak"))
	})

	_, err := fx.service.UpdateUser(ctx, user, user.ID, &usecase.UpdateUserInput{Password: strPtr("weak")})

	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestUserService_DeleteAccount(t *testing.T) {
	t.Run("removes blogs then user and publishes", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

		expectTransaction(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			blogRepo := mockRepo.NewMockBlogRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewBlogRepository().Return(blogRepo)
			factory.EXPECT().NewUserRepository().Return(userRepo)
			blogRepo.EXPECT().DeleteByCreator(ctx, user.ID).Return(int64(2), nil)
			userRepo.EXPECT().Delete(ctx, user.ID).Return(nil)
		})
		fx.publisher.EXPECT().
			PublishAccountEvent(ctx, mock.MatchedBy(func(e *service.AccountEvent) bool {
				return e.Type == service.AccountDeleted && e.Email == user.Email
			})).
			Return(nil)

		require.NoError(t, fx.service.DeleteAccount(ctx, user))
	})

	t.Run("blog removal failure aborts", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New()}

		expectTransaction(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			blogRepo := mockRepo.NewMockBlogRepository(t)
			factory.EXPECT().NewBlogRepository().Return(blogRepo)
			blogRepo.EXPECT().DeleteByCreator(ctx, user.ID).Return(int64(0), errors.New("disk full"))
		})

		err := fx.service.DeleteAccount(ctx, user)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestUserService_ListUsers_EmptyIsNotAnError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	page := entity.NewPage(1, 10)

	fx.userRepo.EXPECT().List(ctx, page).Return(&entity.PageResult[*entity.User]{Page: page}, nil)

	result, err := fx.service.ListUsers(ctx, page)

	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestUserService_SearchUsers(t *testing.T) {
	page := entity.NewPage(1, 10)

	t.Run("no match", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().Search(ctx, "zzz", page).Return(&entity.PageResult[*entity.User]{Page: page}, nil)

		_, err := fx.service.SearchUsers(ctx, " zzz ", page)

		assert.True(t, errors.Is(err, domainerrors.ErrNoSearchResults))
	})

	t.Run("blank term", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.SearchUsers(context.Background(), "  ", page)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "term", validationErr.Field)
	})

	t.Run("match", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		found := &entity.PageResult[*entity.User]{Items: []*entity.User{{ID: uuid.New()}}, Page: page, Total: 1}

		fx.userRepo.EXPECT().Search(ctx, "ada", page).Return(found, nil)

		result, err := fx.service.SearchUsers(ctx, "ada", page)

		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
	})
}
