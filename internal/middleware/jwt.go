package middleware // package middleware contains reusable HTTP middleware functions

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-platform/internal/model"
	"github.com/iliyamo/blog-platform/internal/utils"
)

// UserDirectory is the lookup the guard needs to resolve a token's user id
// back to a live account.
type UserDirectory interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// JWTAuth returns an Echo middleware that gates protected routes. A request
// passes through four steps, any of which rejects with 401:
//
//  1. extract the token from an "Authorization: Bearer <token>" header,
//  2. verify its signature and expiry,
//  3. re-resolve the user id claim against the directory — tokens cannot be
//     revoked, so a deleted account must die here on its next request,
//  4. attach the resolved user to the request context for handlers.
func JWTAuth(secret string, users UserDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			userID, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			u, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				// Covers both a user deleted after token issuance and a
				// directory failure; neither may reach the handler.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}

			c.Set("user", u)
			c.Set("user_id", u.ID)
			return next(c)
		}
	}
}

// CurrentUser returns the user the guard attached to the context. The bool
// is false on unguarded routes.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get("user").(model.User)
	return u, ok
}
