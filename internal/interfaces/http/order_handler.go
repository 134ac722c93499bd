package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
)

// OrderHandler pedidos de preventa.
type OrderHandler struct {
	state *appstate.StateUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(state *appstate.StateUseCase) *OrderHandler {
	return &OrderHandler{state: state}
}

// Create godoc
// @Summary      Crear pedido de preventa
// @Tags         preventa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido"
// @Success      201  {object}  entity.Order
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	order, err := h.state.CreateOrder(c.Context(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// SetStatus godoc
// @Summary      Completar o cancelar pedido pendiente
// @Description  Solo desde Pendiente hacia Completado o Cancelado. Completar no genera venta ni mueve existencias.
// @Tags         preventa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Param        body  body  dto.SetOrderStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  entity.Order
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	order, err := h.state.SetOrderStatus(c.Context(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}
