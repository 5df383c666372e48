package middleware

// identity.go defines helper functions shared across middleware files.
// It provides an adminID extraction function used when building
// rate-limit bucket keys. When no admin is authenticated, "guest" is
// returned.

import (
	"github.com/labstack/echo/v4"
)

// adminID extracts the authenticated admin's identifier from context.
// JWTAuth stores the subject claim under "admin_id"; unauthenticated
// requests map to "guest".
func adminID(c echo.Context) string {
	if v, ok := c.Get("admin_id").(string); ok && v != "" {
		return v
	}
	return "guest"
}
