package middleware

import (
	"net/http"
	"time"

	"blog/config"
	"blog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookie reads and writes the cookie that carries the session token.
type SessionCookie struct {
	name   string
	secure bool
}

// NewSessionCookie builds the cookie settings from the auth configuration.
func NewSessionCookie(cfg *config.Config) *SessionCookie {
	cookie := &SessionCookie{name: "token"}
	if cfg.Auth != nil {
		if cfg.Auth.CookieName != "" {
			cookie.name = cfg.Auth.CookieName
		}
		cookie.secure = cfg.Auth.CookieSecure
	}

	return cookie
}

// Name returns the cookie name.
func (s *SessionCookie) Name() string {
	return s.name
}

// Read returns the session token sent by the client, or "" when absent.
func (s *SessionCookie) Read(c echo.Context) string {
	cookie, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// Set stores token on the client until it expires.
func (s *SessionCookie) Set(c echo.Context, token *service.IssuedToken) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    token.Value,
		Path:     "/",
		Expires:  token.ExpiresAt,
		MaxAge:   int(time.Until(token.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the cookie on the client.
func (s *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
