package middleware

import (
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Cookie    *SessionCookie
	Logger    *slog.Logger
}

// AuthMiddleware guards routes with the session cookie.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	cookie    *SessionCookie
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		cookie:    params.Cookie,
		logger:    params.Logger,
	}
}

// RequireUser admits any authenticated identity and attaches it to the context.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.sessionUC.Authenticate(c.Request().Context(), m.cookie.Read(c))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetSessionUser(c, user, m.logger)

		return next(c)
	}
}

// RequireAdmin admits authenticated identities whose stored admin flag is set.
// The flag is read from the store, never from the token claim.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireUser(func(c echo.Context) error {
		user, _ := GetCurrentUser(c)
		if !user.Admin {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Admin route refused", slog.Any("userID", user.ID))

			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return next(c)
	})
}

// GetCurrentUser returns the identity admitted by RequireUser or RequireAdmin.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetSessionUser(c)
}
