package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/feria-pos/internal/application/analytics"
	"github.com/jhoicas/feria-pos/internal/application/dto"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
)

// InventoryHandler existencias por bodega y ajustes manuales.
type InventoryHandler struct {
	uc    *appanalytics.InventoryUseCase
	state *appstate.StateUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appanalytics.InventoryUseCase, state *appstate.StateUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, state: state}
}

// List godoc
// @Summary      Existencias por producto y bodega
// @Tags         logistica
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  string  false  "Filtrar por bodega"
// @Param        category  query  string  false  "Filtrar por categoría"
// @Param        lowOnly  query  boolean  false  "Solo existencias bajas"
// @Success      200  {object}  dto.ListResponse[dto.InventoryRowDTO]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var q dto.InventoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	rows, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(rows))
}

// Adjust godoc
// @Summary      Ajuste manual de existencia (solo MASTER)
// @Tags         logistica
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustInventoryRequest  true  "Producto, bodega y delta con signo"
// @Success      200  {object}  entity.InventoryItem
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.state.AdjustInventory(c.Context(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}
