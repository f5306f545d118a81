package context

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSessionUser(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-1"))
	c := echo.New().NewContext(req, httptest.NewRecorder())

	_, ok := GetSessionUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New()}
	SetSessionUser(c, user, fallback)

	got, ok := GetSessionUser(c)
	require.True(t, ok)
	assert.Same(t, user, got)

	ctx := c.Request().Context()
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))

	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), user.ID.String())
}
