package impl

import (
	"context"
	"log/slog"
	"strings"

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

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	blogRepo  repository.BlogRepository
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	BlogRepo      repository.BlogRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		blogRepo:  params.BlogRepo,
		qrCode:    params.QRCodeService,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBlog publishes a blog authored by creatorID.
func (srv *blogService) CreateBlog(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		Title:     strings.TrimSpace(input.Title),
		Body:      input.Body,
		Image:     strings.TrimSpace(input.Image),
		CreatorID: creatorID,
	}

	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		srv.log(ctx).Warn("Failed to create blog", slog.Any("creatorID", creatorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Debug("Blog created", slog.Any("blogID", blog.ID), slog.Any("creatorID", creatorID))

	return blog, nil
}

// GetBlog loads a single blog.
func (srv *blogService) GetBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBlogNotFound) {
		return nil, errors.Wrap(domainerrors.ErrBlogNotFound, "get blog")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blog")
	}

	return blog, nil
}

// ListBlogs returns the newest blogs first.
func (srv *blogService) ListBlogs(ctx context.Context, page entity.Page) (*entity.PageResult[*entity.Blog], error) {
	return srv.list(ctx, entity.BlogFilter{}, page)
}

// ListBlogsByCreator returns the blogs written by creatorID.
func (srv *blogService) ListBlogsByCreator(ctx context.Context, creatorID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Blog], error) {
	return srv.list(ctx, entity.BlogFilter{CreatorID: &creatorID}, page)
}

// SearchBlogs matches term against title and body; no match is ErrNoSearchResults.
func (srv *blogService) SearchBlogs(ctx context.Context, term string, page entity.Page) (*entity.PageResult[*entity.Blog], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domainerrors.NewValidationError("term", "is required")
	}

	result, err := srv.list(ctx, entity.BlogFilter{Term: term}, page)
	if err != nil {
		return nil, err
	}
	if result.Total == 0 {
		return nil, errors.Wrapf(domainerrors.ErrNoSearchResults, "no blogs match %q", term)
	}

	return result, nil
}

func (srv *blogService) list(ctx context.Context, filter entity.BlogFilter, page entity.Page) (*entity.PageResult[*entity.Blog], error) {
	result, err := srv.blogRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return result, nil
}

// UpdateBlog edits a blog created by subjectID. Blogs of other creators are
// indistinguishable from missing ones.
func (srv *blogService) UpdateBlog(ctx context.Context, subjectID, blogID uuid.UUID, input *usecase.UpdateBlogInput) (*entity.Blog, error) {
	if input.Empty() {
		return nil, errors.WithStack(domainerrors.NewValidationError("blog", "must change at least one of title, body, image"))
	}

	var updated *entity.Blog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.NewBlogRepository()

		blog, err := blogRepo.FindByIDAndCreator(ctx, blogID, subjectID)
		if errors.Is(err, repository.ErrBlogNotFound) {
			return errors.Wrap(domainerrors.ErrBlogNotFound, "update blog")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find blog")
		}

		if input.Title != nil {
			blog.Title = strings.TrimSpace(*input.Title)
		}
		if input.Body != nil {
			blog.Body = *input.Body
		}
		if input.Image != nil {
			blog.Image = strings.TrimSpace(*input.Image)
		}

		err = blogRepo.Update(ctx, blog)
		if errors.Is(err, repository.ErrBlogNotFound) {
			return errors.Wrap(domainerrors.ErrBlogNotFound, "update blog")
		}
		if err != nil {
			return errors.Wrap(err, "failed to update blog")
		}
		updated = blog

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Blog update rejected", slog.Any("blogID", blogID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute blog update transaction")
	}

	return updated, nil
}

// DeleteBlog removes a blog created by subjectID.
func (srv *blogService) DeleteBlog(ctx context.Context, subjectID, blogID uuid.UUID) error {
	err := srv.blogRepo.Delete(ctx, blogID, subjectID)
	if errors.Is(err, repository.ErrBlogNotFound) {
		return errors.Wrap(domainerrors.ErrBlogNotFound, "delete blog")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete blog")
	}

	srv.log(ctx).Debug("Blog deleted", slog.Any("blogID", blogID))

	return nil
}

// BlogShareCode renders the share QR code of an existing blog.
func (srv *blogService) BlogShareCode(ctx context.Context, blogID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetBlog(ctx, blogID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateBlogQR(blogID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share code")
	}

	return png, nil
}
