package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// SessionBoundary gates the browser-facing page areas on token presence:
// an unauthenticated request for the dashboard is redirected to the login
// page, and an authenticated request for the login page is redirected to the
// dashboard. Everything else passes through.
//
// Presence is the only thing checked here. Full verification happens in the
// Auth middleware guarding the API routes a page actually calls, so a
// present-but-invalid token still cannot act on anything.
func SessionBoundary() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			hasToken := false
			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				hasToken = true
			}

			if !hasToken && strings.HasPrefix(path, dashboardPath) {
				return c.Redirect(http.StatusFound, loginPath)
			}
			if hasToken && path == loginPath {
				return c.Redirect(http.StatusFound, dashboardPath)
			}

			return next(c)
		}
	}
}
