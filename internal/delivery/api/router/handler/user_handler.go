// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	loginRedirect  = "/users/profile"
	logoutRedirect = "/blogs"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Cookie *middleware.SessionCookie
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	cookie *middleware.SessionCookie
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		cookie: params.Cookie,
		logger: params.Logger,
	}
}

// SignupRequest is the body of POST /users.
type SignupRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email,max=100"`
	Password  string `json:"password" form:"password" validate:"required"`
	FirstName string `json:"firstName" form:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" form:"lastName" validate:"max=100"`
	JobTitle  string `json:"jobTitle" form:"jobTitle" validate:"max=100"`
	Avatar    string `json:"avatar" form:"avatar" validate:"max=200"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UpdateUserRequest is the body of PATCH /users/:id. It has no admin field,
// so an admin flag sent by the client is dropped while binding.
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitnil,email,max=100"`
	Password  *string `json:"password" validate:"omitempty"`
	FirstName *string `json:"firstName" validate:"omitnil,notblank,max=100"`
	LastName  *string `json:"lastName" validate:"omitnil,notblank,max=100"`
	JobTitle  *string `json:"jobTitle" validate:"omitempty,max=100"`
	Avatar    *string `json:"avatar" validate:"omitempty,max=200"`
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed request body")
	}

	return c.Validate(req)
}

// Signup registers an account and signs it in.
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		JobTitle:  req.JobTitle,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, output.Token)

	return response.Success(c, http.StatusCreated, presentProfile(output.User))
}

// Login signs an account in and redirects to its profile.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, output.Token)

	return c.Redirect(http.StatusSeeOther, loginRedirect)
}

// Logout drops the session cookie. Tokens are stateless, so nothing is
// recorded server side.
func (h *UserHandler) Logout(c echo.Context) error {
	h.cookie.Clear(c)

	return c.Redirect(http.StatusSeeOther, logoutRedirect)
}

// Profile returns the signed-in account.
func (h *UserHandler) Profile(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, presentProfile(user))
}

// GetUser returns the public view of any account.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentPublicUser(user))
}

// UpdateUser edits the signed-in account. A password change rotates the
// session cookie.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	subject, ok := middleware.GetCurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.UpdateUser(c.Request().Context(), subject, targetID, &usecase.UpdateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		JobTitle:  req.JobTitle,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Token != nil {
		h.cookie.Set(c, output.Token)
	}

	return response.Success(c, http.StatusOK, presentProfile(output.User))
}

// DeleteAccount removes the signed-in account and its blogs.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	subject, ok := middleware.GetCurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := h.userUC.DeleteAccount(c.Request().Context(), subject); err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"})
}

// ListUsers returns one page of accounts.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	result, err := h.userUC.ListUsers(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, result, presentProfile)
}

// SearchUsers returns accounts matching the term query parameter.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	result, err := h.userUC.SearchUsers(c.Request().Context(), c.QueryParam("term"), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, result, presentProfile)
}
