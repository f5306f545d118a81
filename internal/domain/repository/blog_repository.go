package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is returned when no blog matches, including when the
// blog exists but belongs to another creator.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines blog persistence. Every mutating method is scoped
// by creator so ownership is enforced in the same statement that writes.
type BlogRepository interface {
	// FindByID retrieves a blog regardless of creator.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// FindByIDAndCreator retrieves a blog only if creatorID created it.
	FindByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Blog, error)

	// Create persists a new blog and fills in its generated fields.
	Create(ctx context.Context, blog *entity.Blog) error

	// Update writes title, body and image where both ID and CreatorID match.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes the blog with id created by creatorID.
	Delete(ctx context.Context, id, creatorID uuid.UUID) error

	// DeleteByCreator removes every blog created by creatorID and reports how many.
	DeleteByCreator(ctx context.Context, creatorID uuid.UUID) (int64, error)

	// List returns blogs newest first, narrowed by filter.
	List(ctx context.Context, filter entity.BlogFilter, page entity.Page) (*entity.PageResult[*entity.Blog], error)
}
