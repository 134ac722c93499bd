package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/feria-pos/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero y la bitácora.
type DashboardHandler struct {
	uc    *appanalytics.DashboardUseCase
	audit *appanalytics.AuditUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, audit *appanalytics.AuditUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, audit: audit}
}

// GetSummary godoc
// @Summary      KPIs del tablero
// @Description  Se recalcula en cada consulta a partir del snapshot vigente.
// @Tags         tablero
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// AuditLog godoc
// @Summary      Bitácora de ventas, traspasos y pedidos
// @Tags         tablero
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "VENTA, TRASPASO o PEDIDO"
// @Success      200  {array}  dto.AuditEntryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/audit-log [get]
func (h *DashboardHandler) AuditLog(c *fiber.Ctx) error {
	entries, err := h.audit.List(c.Context(), c.Query("type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entries)
}
