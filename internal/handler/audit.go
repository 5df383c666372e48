package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivehub/vehicle-rental/internal/service"
)

// AuditHandler exposes the read-only audit trail.
type AuditHandler struct {
	Svc *service.Service
}

func NewAuditHandler(svc *service.Service) *AuditHandler { return &AuditHandler{Svc: svc} }

// List returns a filtered, paginated page of audit entries, newest
// first.  Query params: page, limit, entityType, action, admin, search.
func (h *AuditHandler) List(c echo.Context) error {
	f := service.AuditFilter{
		EntityType: c.QueryParam("entityType"),
		Action:     c.QueryParam("action"),
		Admin:      c.QueryParam("admin"),
		Search:     c.QueryParam("search"),
		Page:       atoiDefault(c.QueryParam("page"), 1),
		PageSize:   atoiDefault(c.QueryParam("limit"), 20),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	page, err := h.Svc.ListAuditEntries(ctx, f)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logs":        page.Items,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.Page,
	})
}
