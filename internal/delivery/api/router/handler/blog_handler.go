package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/response"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC        usecase.BlogUsecase
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// BlogHandler holds dependencies for blog handlers.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
	qrCode service.QRCodeService
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler.
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		qrCode: params.QRCodeService,
		logger: params.Logger,
	}
}

// CreateBlogRequest is the body of POST /blogs. There is no creator field:
// the creator is always the signed-in account.
type CreateBlogRequest struct {
	Title string `json:"title" form:"title" validate:"required,notblank,max=50"`
	Body  string `json:"body" form:"body" validate:"required,notblank,max=500"`
	Image string `json:"image" form:"image" validate:"required,notblank,max=50"`
}

// UpdateBlogRequest is the body of PATCH /blogs/:id.
type UpdateBlogRequest struct {
	Title *string `json:"title" validate:"omitnil,notblank,max=50"`
	Body  *string `json:"body" validate:"omitnil,notblank,max=500"`
	Image *string `json:"image" validate:"omitnil,notblank,max=50"`
}

func (h *BlogHandler) present(blog *entity.Blog) BlogResponse {
	return BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Body:      blog.Body,
		Image:     blog.Image,
		CreatorID: blog.CreatorID,
		ShareURL:  h.qrCode.ShareURL(blog.ID),
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

// ListBlogs returns the newest blogs first.
func (h *BlogHandler) ListBlogs(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	result, err := h.blogUC.ListBlogs(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, result, h.present)
}

// SearchBlogs returns blogs matching the term query parameter.
func (h *BlogHandler) SearchBlogs(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	result, err := h.blogUC.SearchBlogs(c.Request().Context(), c.QueryParam("term"), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, result, h.present)
}

// MyBlogs returns the blogs of the signed-in account.
func (h *BlogHandler) MyBlogs(c echo.Context) error {
	subject, ok := middleware.GetCurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	result, err := h.blogUC.ListBlogsByCreator(c.Request().Context(), subject.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, result, h.present)
}

// GetBlog returns a single blog.
func (h *BlogHandler) GetBlog(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	blog, err := h.blogUC.GetBlog(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.present(blog))
}

// ShareCode returns the blog's share QR code as a PNG.
func (h *BlogHandler) ShareCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.blogUC.BlogShareCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateBlog publishes a blog as the signed-in account.
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	subject, ok := middleware.GetCurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var req CreateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	blog, err := h.blogUC.CreateBlog(c.Request().Context(), subject.ID, &usecase.CreateBlogInput{
		Title: req.Title,
		Body:  req.Body,
		Image: req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.present(blog))
}

// UpdateBlog edits a blog of the signed-in account.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	subject, ok := middleware.GetCurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	blog, err := h.blogUC.UpdateBlog(c.Request().Context(), subject.ID, id, &usecase.UpdateBlogInput{
		Title: req.Title,
		Body:  req.Body,
		Image: req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.present(blog))
}

// DeleteBlog removes a blog of the signed-in account.
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	subject, ok := middleware.GetCurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.blogUC.DeleteBlog(c.Request().Context(), subject.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Blog deleted"})
}
