package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 14, 15, 9, 26, 535897932, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a fresh factory
// prepared by setup.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	ctx context.Context,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      *userService
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	policy       *mockSvc.MockPasswordPolicy
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	policy := mockSvc.NewMockPasswordPolicy(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewUserService(UserServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		Hasher:         hasher,
		PasswordPolicy: policy,
		TokenService:   tokenService,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	}).(*userService)
	srv.now = func() time.Time { return fixedNow }

	return userServiceFixtures{
		service:      srv,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		policy:       policy,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

// blogServiceFixtures holds all test dependencies for blog service tests.
type blogServiceFixtures struct {
	service   *blogService
	txManager *mockRepo.MockTransactionManager
	blogRepo  *mockRepo.MockBlogRepository
	qrCode    *mockSvc.MockQRCodeService
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	blogRepo := mockRepo.NewMockBlogRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	srv := NewBlogService(BlogServiceParams{
		TxManager:     txManager,
		BlogRepo:      blogRepo,
		QRCodeService: qrCode,
		Logger:        newDiscardLogger(),
	}).(*blogService)

	return blogServiceFixtures{
		service:   srv,
		txManager: txManager,
		blogRepo:  blogRepo,
		qrCode:    qrCode,
	}
}

func strPtr(s string) *string {
	return &s
}
