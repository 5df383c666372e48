package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/drivehub/vehicle-rental/internal/handler"    // import the handlers that implement business logic
	"github.com/drivehub/vehicle-rental/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication‑related routes and applies the
// necessary middleware.  Unauthenticated operations live under /api/auth,
// while protected endpoints live under /api.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Create a route group under the /api/auth prefix for operations that do
	// not require an existing session (register, login, refresh).  Each of
	// these handlers is responsible for generating or exchanging tokens.
	g := e.Group("/api/auth")
	// Register a POST endpoint to handle admin registration at /api/auth/register.
	g.POST("/register", a.Register)
	// Register a POST endpoint to handle admin login at /api/auth/login.
	g.POST("/login", a.Login)
	// Register a POST endpoint to refresh access tokens at /api/auth/refresh. This rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Register a POST endpoint to issue a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Register a POST endpoint to log out using a refresh token or a bearer.
	// The handler accepts a JSON body containing a `refresh_token` and will
	// invalidate that token; with only a bearer it revokes every session.
	g.POST("/logout", a.Logout)

	// Create another group for routes that require a valid access token.  All
	// handlers registered on this group will execute the JWTAuth middleware
	// before being invoked.
	auth := e.Group("/api")
	// Apply the JWTAuth middleware to the protected group using the provided secret.
	auth.Use(middleware.JWTAuth(jwtSecret))
	// Every authenticated endpoint is admin-only.
	auth.Use(middleware.RequireRole(handler.RoleAdmin))
	// Register a GET endpoint at /api/me that returns the authenticated admin's information.
	auth.GET("/me", a.Me)
}
