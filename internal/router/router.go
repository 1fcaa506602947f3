package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-platform/internal/handler"
	"github.com/iliyamo/blog-platform/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check, used by
// load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the login endpoint and the protected identity probe.
// Login lives under /v1/auth and needs no token; /v1/me demonstrates the
// access guard and returns the resolved user.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, guard echo.MiddlewareFunc) {
	e.POST("/v1/auth/login", a.Login)
	e.GET("/v1/me", a.Me, guard)
}

// RegisterUsers wires the user CRUD. Registration is public; every other
// user route requires a valid bearer token. The guard re-resolves the
// token's user on each request, so deleting an account cuts off its tokens.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, guard echo.MiddlewareFunc) {
	e.POST("/v1/users", u.Create)

	g := e.Group("/v1/users")
	g.Use(guard)
	g.GET("", u.List)
	g.GET("/:id", u.Get)
	g.PATCH("/:id", u.Update)
	g.DELETE("/:id", u.Delete)
}

// RegisterArticles wires the article CRUD. All article routes are public;
// the read endpoints go through the Redis response cache when one is
// configured (pass middleware.NewRedisCache output or nil).
func RegisterArticles(e *echo.Echo, a *handler.ArticleHandler, cache echo.MiddlewareFunc) {
	read := func(path string, h echo.HandlerFunc) {
		if cache != nil {
			e.GET(path, h, cache)
			return
		}
		e.GET(path, h)
	}

	e.POST("/v1/articles", a.Create)
	read("/v1/articles", a.List)
	e.GET("/v1/articles/drafts", a.ListDrafts)
	read("/v1/articles/:id", a.Get)
	e.PATCH("/v1/articles/:id", a.Update)
	e.DELETE("/v1/articles/:id", a.Delete)
}

// Guard builds the access guard middleware from its dependencies. Kept here
// so main wires routes without importing the middleware package directly.
func Guard(jwtSecret string, users middleware.UserDirectory) echo.MiddlewareFunc {
	return middleware.JWTAuth(jwtSecret, users)
}
