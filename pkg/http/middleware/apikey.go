package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// APIKeyAuth requires a bearer token on every route except the given
// exempt paths. Comparison is constant-time.
func APIKeyAuth(key string, exemptPaths []string) echo.MiddlewareFunc {
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := exempt[c.Request().URL.Path]; ok {
				return next(c)
			}

			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "missing bearer token",
				})
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "invalid API key",
				})
			}
			return next(c)
		}
	}
}
