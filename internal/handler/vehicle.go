package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivehub/vehicle-rental/internal/service"
)

// VehicleHandler bundles the engine for fleet endpoints.
type VehicleHandler struct {
	Svc *service.Service
}

func NewVehicleHandler(svc *service.Service) *VehicleHandler { return &VehicleHandler{Svc: svc} }

// List returns the active fleet.
func (h *VehicleHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	vehicles, err := h.Svc.ListVehicles(ctx)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"vehicles": vehicles})
}

// Get returns one vehicle by id.
func (h *VehicleHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	v, err := h.Svc.GetVehicle(ctx, c.Param("id"))
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Create adds a vehicle to the fleet.
func (h *VehicleHandler) Create(c echo.Context) error {
	var in service.VehicleInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	v, err := h.Svc.CreateVehicle(ctx, actorFrom(c), in)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

// Update applies a partial edit to a vehicle.
func (h *VehicleHandler) Update(c echo.Context) error {
	var patch service.VehiclePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	v, err := h.Svc.UpdateVehicle(ctx, actorFrom(c), c.Param("id"), patch)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Available lists the offerable vehicles free for a span.  Query
// params: startDate, startTime, endDate, endTime, exclude (booking id
// to skip, used by edit forms).
func (h *VehicleHandler) Available(c echo.Context) error {
	sp, err := service.ParseSpan(
		c.QueryParam("startDate"), c.QueryParam("startTime"),
		c.QueryParam("endDate"), c.QueryParam("endTime"))
	if err != nil {
		return writeEngineError(c, err)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	vehicles, err := h.Svc.AvailableVehicles(ctx, sp, c.QueryParam("exclude"))
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"vehicles": vehicles})
}
