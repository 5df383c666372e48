package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/drivehub/vehicle-rental/internal/handler"    // admin handlers
	"github.com/drivehub/vehicle-rental/internal/middleware" // JWT + role middlewares
)

// RegisterAdmin registers ADMIN-scoped endpoints under /api.
// All routes require a valid JWT and ADMIN role.  cacheMW wraps the
// read-heavy GET endpoints; pass nil to disable response caching.
func RegisterAdmin(e *echo.Echo, b *handler.BookingHandler, v *handler.VehicleHandler,
	au *handler.AuditHandler, l *handler.ListingHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleAdmin),
	)
	if cacheMW == nil {
		cacheMW = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	// ---- Bookings ----
	g.GET("/bookings", b.List)
	// Static segments must be registered alongside the :id routes; Echo
	// resolves them before the parameterized variants.
	g.GET("/bookings/availability", b.Availability)
	g.GET("/bookings/quote", b.Quote)
	g.GET("/bookings/:id", b.Get)
	g.POST("/bookings", b.Create)
	g.PUT("/bookings/:id", b.Update)
	g.PATCH("/bookings/:id", b.Update) // allow partial updates via PATCH as well
	g.PATCH("/bookings/status", b.SetStatus)

	// ---- Vehicles ----
	g.GET("/vehicles", v.List, cacheMW)
	g.GET("/vehicles/available", v.Available)
	g.GET("/vehicles/:id", v.Get)
	g.POST("/vehicles", v.Create)
	g.PUT("/vehicles/:id", v.Update)
	g.PATCH("/vehicles/:id", v.Update)

	// ---- Audit trail ----
	g.GET("/audit-logs", au.List)

	// ---- Legacy listings projection ----
	g.GET("/listings", l.List)
	g.PATCH("/listings/status", l.SetStatus)
}
