package context

import (
	"log/slog"

	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetSessionUser records the authenticated identity on c. The request logger
// gains a user_id attribute from here on.
func SetSessionUser(c echo.Context, user *entity.User, fallback *slog.Logger) {
	c.Set(string(KeySessionUser), user)

	ctx := c.Request().Context()
	logger := GetLoggerOrDefault(ctx, fallback).With(slog.String("user_id", user.ID.String()))
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}

// GetSessionUser returns the identity set by SetSessionUser.
func GetSessionUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeySessionUser)).(*entity.User)

	return user, ok && user != nil
}
