package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/service"
)

// BookingHandler bundles the engine for booking endpoints.
type BookingHandler struct {
	Svc *service.Service
}

func NewBookingHandler(svc *service.Service) *BookingHandler { return &BookingHandler{Svc: svc} }

// statusReq is the body of the status transition endpoint.
type statusReq struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// List returns a filtered, paginated page of bookings with vehicles.
// Query params: page, limit, status, search.
func (h *BookingHandler) List(c echo.Context) error {
	f := service.BookingFilter{
		Status:   c.QueryParam("status"),
		Search:   c.QueryParam("search"),
		Page:     atoiDefault(c.QueryParam("page"), 1),
		PageSize: atoiDefault(c.QueryParam("limit"), 10),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	page, err := h.Svc.ListBookings(ctx, f)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"bookings":    page.Items,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.Page,
	})
}

// Get returns one booking joined with its vehicle.
func (h *BookingHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Svc.GetBooking(ctx, c.Param("id"))
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Create books a vehicle for a span on behalf of a customer.
func (h *BookingHandler) Create(c echo.Context) error {
	var in service.CreateBookingInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Svc.CreateBooking(ctx, actorFrom(c), in)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Update applies a partial edit to a pending booking.
func (h *BookingHandler) Update(c echo.Context) error {
	var patch service.BookingPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Svc.EditBooking(ctx, actorFrom(c), c.Param("id"), patch)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// SetStatus moves a pending booking to confirmed or cancelled.
func (h *BookingHandler) SetStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and status required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Svc.SetBookingStatus(ctx, actorFrom(c), req.ID, req.Status)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "booking": b})
}

// Availability resolves whether a vehicle is free for a span.
// Query params: vehicleId, startDate, startTime, endDate, endTime, exclude.
func (h *BookingHandler) Availability(c echo.Context) error {
	vehicleID := c.QueryParam("vehicleId")
	if vehicleID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicleId required"})
	}
	sp, err := service.ParseSpan(
		c.QueryParam("startDate"), c.QueryParam("startTime"),
		c.QueryParam("endDate"), c.QueryParam("endTime"))
	if err != nil {
		return writeEngineError(c, err)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	avail, err := h.Svc.CheckAvailability(ctx, vehicleID, sp, c.QueryParam("exclude"))
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, avail)
}

// Quote prices a span against a vehicle's rate card without booking.
// Query params: vehicleId, bookingType, startDate, startTime, endDate, endTime.
func (h *BookingHandler) Quote(c echo.Context) error {
	vehicleID := c.QueryParam("vehicleId")
	bookingType := c.QueryParam("bookingType")
	if vehicleID == "" || bookingType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicleId and bookingType required"})
	}
	sp, err := service.ParseSpan(
		c.QueryParam("startDate"), c.QueryParam("startTime"),
		c.QueryParam("endDate"), c.QueryParam("endTime"))
	if err != nil {
		return writeEngineError(c, err)
	}
	if bookingType == model.BookingTypeHourly && !sp.SameDay() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hourly bookings must start and end on the same day"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cost, err := h.Svc.ComputeCost(ctx, vehicleID, sp, bookingType)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"totalCost": cost})
}

// reqCtx bounds a request-scoped operation the same way everywhere.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
