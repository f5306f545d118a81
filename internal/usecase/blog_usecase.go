package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBlogInput defines the data required to publish a blog.
// The creator is never part of the input.
type CreateBlogInput struct {
	Title string
	Body  string
	Image string
}

// UpdateBlogInput carries a partial blog update. Nil fields are left untouched.
type UpdateBlogInput struct {
	Title *string
	Body  *string
	Image *string
}

// Empty reports whether the update would change nothing.
func (in *UpdateBlogInput) Empty() bool {
	return in == nil || (in.Title == nil && in.Body == nil && in.Image == nil)
}

// BlogUsecase defines blog operations.
type BlogUsecase interface {
	CreateBlog(ctx context.Context, creatorID uuid.UUID, input *CreateBlogInput) (*entity.Blog, error)
	GetBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	ListBlogs(ctx context.Context, page entity.Page) (*entity.PageResult[*entity.Blog], error)
	ListBlogsByCreator(ctx context.Context, creatorID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Blog], error)
	SearchBlogs(ctx context.Context, term string, page entity.Page) (*entity.PageResult[*entity.Blog], error)

	// UpdateBlog and DeleteBlog only see blogs created by subjectID; any
	// other blog is reported as not found.
	UpdateBlog(ctx context.Context, subjectID, blogID uuid.UUID, input *UpdateBlogInput) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, subjectID, blogID uuid.UUID) error

	// BlogShareCode renders a PNG QR code linking to the blog.
	BlogShareCode(ctx context.Context, blogID uuid.UUID) ([]byte, error)
}
