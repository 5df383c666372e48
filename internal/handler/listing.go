package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/service"
)

// ListingHandler serves the legacy listings projection.  Older admin
// dashboards render bookings as vehicle "listings": each booking
// appears as its vehicle's fields plus the booking's status and
// creation time.  The projection is read-time only and stores nothing.
type ListingHandler struct {
	Svc *service.Service
}

func NewListingHandler(svc *service.Service) *ListingHandler { return &ListingHandler{Svc: svc} }

// listing is the legacy wire shape: the vehicle flattened with price,
// status and submittedAt stapled on.
type listing struct {
	model.Vehicle
	Price       int64     `json:"price"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// listingStatusReq carries the legacy status vocabulary.
type listingStatusReq struct {
	ID     string `json:"id"`
	Status string `json:"status"` // "approved" | "rejected"
}

// List returns bookings projected as listings with the same filter and
// pagination semantics as the booking list.
func (h *ListingHandler) List(c echo.Context) error {
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

	listings := make([]listing, 0, len(page.Items))
	for _, item := range page.Items {
		listings = append(listings, listing{
			Vehicle:     *item.Vehicle,
			Price:       item.Vehicle.DailyRate,
			Status:      item.Status,
			SubmittedAt: item.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"listings":    listings,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.Page,
	})
}

// SetStatus accepts the legacy approved/rejected vocabulary and maps
// it onto the booking lifecycle.
func (h *ListingHandler) SetStatus(c echo.Context) error {
	var req listingStatusReq
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and status required"})
	}

	var target string
	switch req.Status {
	case "approved":
		target = model.BookingStatusConfirmed
	case "rejected":
		target = model.BookingStatusCancelled
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be \"approved\" or \"rejected\""})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Svc.SetBookingStatus(ctx, actorFrom(c), req.ID, target); err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
