package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivehub/vehicle-rental/internal/service"
)

// writeEngineError maps engine errors onto HTTP responses.  The engine
// never sees HTTP; this is the single place its error taxonomy turns
// into status codes.
func writeEngineError(c echo.Context, err error) error {
	var (
		ve *service.ValidationError
		ce *service.ConflictError
		ie *service.IntegrityError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Reason})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "booking is no longer pending"})
	case errors.As(err, &ce):
		return c.JSON(http.StatusConflict, echo.Map{
			"error":     ce.Error(),
			"conflicts": ce.Conflicts,
		})
	case errors.As(err, &ie):
		c.Logger().Errorf("data integrity: %v", ie)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": ie.Error()})
	default:
		c.Logger().Errorf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// actorFrom rebuilds the engine actor from the claims JWTAuth stored
// in context.
func actorFrom(c echo.Context) service.Actor {
	a := service.Actor{}
	if v, ok := c.Get("admin_id").(string); ok {
		a.ID = v
	}
	if v, ok := c.Get("admin_name").(string); ok {
		a.Name = v
	}
	return a
}
