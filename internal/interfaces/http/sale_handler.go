package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
)

// SaleHandler punto de venta.
type SaleHandler struct {
	state *appstate.StateUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(state *appstate.StateUseCase) *SaleHandler {
	return &SaleHandler{state: state}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta existencias de la bodega de la venta; con pago a consignación suma el total a la deuda del cliente.
//               Sin precio por partida se toma el precio de venta del catálogo; sin total se calcula.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Venta"
// @Success      201  {object}  entity.Sale
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	sale, err := h.state.RecordSale(c.Context(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
