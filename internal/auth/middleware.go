package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
)

const (
	bearerPrefix     = "Bearer "
	ClaimsContextKey = "claims"
)

// RequireAdmin guards the back-office endpoints: a valid bearer token with
// the admin role, or 401/403.
func RequireAdmin(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return apperrors.Unauthorized("missing bearer token")
			}

			claims, err := jwtService.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return apperrors.Unauthorized("invalid token")
			}
			if claims.Role != RoleAdmin {
				return apperrors.Forbidden("admin role required")
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}
