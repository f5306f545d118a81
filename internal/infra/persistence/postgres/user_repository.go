package postgres

import (
	"context"
	"strings"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email. Emails are stored
// lowercased, so the lookup normalises its argument the same way.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = normalizeEmail(user.Email)

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return mapUserWriteError(err, "failed to create user")
	}

	// Update the user entity with the generated timestamps
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile, credential and revocation columns. The admin
// column is never part of the statement.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.Email = normalizeEmail(user.Email)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":                 user.Email,
			"password_hash":         string(user.Password),
			"first_name":            user.FirstName,
			"last_name":             user.LastName,
			"job_title":             user.JobTitle,
			"avatar":                user.Avatar,
			"tokens_invalid_before": timePtr(user.TokensInvalidBefore),
			"updated_at":            now,
		})
	if result.Error != nil {
		return mapUserWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns users in signup order.
func (repo *userRepository) List(ctx context.Context, page entity.Page) (*entity.PageResult[*entity.User], error) {
	return repo.findPage(ctx, repo.db.WithContext(ctx).Model(&model.UserModel{}), page)
}

// Search matches term against email, names and job title, ignoring case.
func (repo *userRepository) Search(ctx context.Context, term string, page entity.Page) (*entity.PageResult[*entity.User], error) {
	pattern := likePattern(term)
	scope := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where(
			"LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(first_name) LIKE ? ESCAPE '\\' OR LOWER(last_name) LIKE ? ESCAPE '\\' OR LOWER(job_title) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern,
		)

	return repo.findPage(ctx, scope, page)
}

func (repo *userRepository) findPage(ctx context.Context, scope *gorm.DB, page entity.Page) (*entity.PageResult[*entity.User], error) {
	var total int64
	if err := scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	var rows []model.UserModel
	err := scope.Session(&gorm.Session{}).
		Order("created_at ASC").
		Order("id ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, toUserDomain(&rows[i]))
	}

	return &entity.PageResult[*entity.User]{Items: users, Page: page, Total: total}, nil
}

func mapUserWriteError(err error, details string) error {
	switch classifyConstraint(err) {
	case uniqueConstraint:
		return domainerrors.NewConflictError("email")
	case checkConstraint:
		return domainerrors.NewValidationError("user", "value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// likePattern builds a case-insensitive substring pattern, escaping LIKE wildcards.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))

	return "%" + escaped + "%"
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Password:  entity.PasswordHash(data.PasswordHash),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		JobTitle:  data.JobTitle,
		Avatar:    data.Avatar,
		Admin:     data.Admin,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.TokensInvalidBefore != nil {
		user.TokensInvalidBefore = *data.TokensInvalidBefore
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                  data.ID,
		Email:               data.Email,
		PasswordHash:        string(data.Password),
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		JobTitle:            data.JobTitle,
		Avatar:              data.Avatar,
		Admin:               data.Admin,
		TokensInvalidBefore: timePtr(data.TokensInvalidBefore),
	}
}
