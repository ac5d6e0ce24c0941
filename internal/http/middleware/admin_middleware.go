package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/JLemieux66/PE/internal/config"
	"github.com/JLemieux66/PE/internal/utils"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

const adminTokenHeader = "X-Admin-Token"

// NewAdminMiddleware guards the write endpoints. Callers authenticate with
// either the shared admin token header or a Bearer token minted by the
// admin login endpoint.
func NewAdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if hasValidSharedToken(c) {
				return next(c)
			}

			if email, ok := bearerAdmin(c); ok {
				c.Set("admin_email", email)
				return next(c)
			}

			forbidden := apierror.ForbiddenError
			return c.JSON(forbidden.Code(), forbidden)
		}
	}
}

func hasValidSharedToken(c echo.Context) bool {
	token := c.Request().Header.Get(adminTokenHeader)
	if token == "" || config.AdminToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(config.AdminToken)) == 1
}

func bearerAdmin(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	bearer, found := strings.CutPrefix(auth, "Bearer ")
	if !found {
		return "", false
	}

	email, err := utils.VerifyAdminToken(bearer)
	if err != nil {
		return "", false
	}
	return email, true
}
