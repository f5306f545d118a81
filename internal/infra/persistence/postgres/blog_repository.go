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

// blogRepository implements the domain.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// FindByID retrieves a blog regardless of who created it.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDAndCreator retrieves a blog only when creatorID created it.
// A blog owned by someone else is reported exactly like a missing one.
func (repo *blogRepository) FindByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Blog, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ? AND creator_id = ?", id, creatorID))
}

func (repo *blogRepository) findOne(ctx context.Context, scope *gorm.DB) (*entity.Blog, error) {
	var blogM model.BlogModel
	if err := scope.First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find blog")
	}

	return toBlogDomain(&blogM), nil
}

// Create persists a new blog.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	blog.Title = strings.TrimSpace(blog.Title)

	blogM := fromBlogDomain(blog)
	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		return mapBlogWriteError(err, "failed to create blog")
	}

	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Update writes title, body and image in a single statement scoped by both
// ID and creator, so a foreign blog is never touched.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blog.Title = strings.TrimSpace(blog.Title)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ? AND creator_id = ?", blog.ID, blog.CreatorID).
		Updates(map[string]any{
			"title":      blog.Title,
			"body":       blog.Body,
			"image":      blog.Image,
			"updated_at": now,
		})
	if result.Error != nil {
		return mapBlogWriteError(result.Error, "failed to update blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	blog.UpdatedAt = now

	return nil
}

// Delete removes the blog with id created by creatorID.
func (repo *blogRepository) Delete(ctx context.Context, id, creatorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Delete(&model.BlogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// DeleteByCreator removes every blog of creatorID.
func (repo *blogRepository) DeleteByCreator(ctx context.Context, creatorID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("creator_id = ?", creatorID).Delete(&model.BlogModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blogs of creator")
	}

	return result.RowsAffected, nil
}

// List returns blogs newest first.
func (repo *blogRepository) List(ctx context.Context, filter entity.BlogFilter, page entity.Page) (*entity.PageResult[*entity.Blog], error) {
	scope := repo.db.WithContext(ctx).Model(&model.BlogModel{})
	if filter.CreatorID != nil {
		scope = scope.Where("creator_id = ?", *filter.CreatorID)
	}
	if term := strings.TrimSpace(filter.Term); term != "" {
		pattern := likePattern(term)
		scope = scope.Where("LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(body) LIKE ? ESCAPE '\\'", pattern, pattern)
	}

	var total int64
	if err := scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count blogs")
	}

	var rows []model.BlogModel
	err := scope.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(rows))
	for i := range rows {
		blogs = append(blogs, toBlogDomain(&rows[i]))
	}

	return &entity.PageResult[*entity.Blog]{Items: blogs, Page: page, Total: total}, nil
}

func mapBlogWriteError(err error, details string) error {
	switch classifyConstraint(err) {
	case uniqueConstraint:
		return domainerrors.NewConflictError("title")
	case foreignKeyConstraint:
		return domainerrors.ErrUserNotFound.WrapMessage("blog creator does not exist")
	case checkConstraint:
		return domainerrors.NewValidationError("blog", "value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Image:     data.Image,
		CreatorID: data.CreatorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Image:     data.Image,
		CreatorID: data.CreatorID,
	}
}
