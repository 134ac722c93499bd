package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/feria-pos/internal/application/analytics"
	"github.com/jhoicas/feria-pos/internal/application/dto"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
)

// CustomerHandler directorio de clientes y abonos a su deuda.
type CustomerHandler struct {
	uc    *appanalytics.CustomerUseCase
	state *appstate.StateUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *appanalytics.CustomerUseCase, state *appstate.StateUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, state: state}
}

// List godoc
// @Summary      Buscar clientes por nombre, encargado o zona
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Texto a buscar, sin distinguir mayúsculas ni acentos"
// @Success      200  {object}  dto.ListResponse[entity.Customer]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// GetByID godoc
// @Summary      Cliente por id
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  entity.Customer
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// RegisterPayment godoc
// @Summary      Abonar a la deuda del cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Param        body  body  dto.PaymentRequest  true  "Monto del abono"
// @Success      200  {object}  entity.Customer
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/payments [post]
func (h *CustomerHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, err := h.state.RegisterPayment(c.Context(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}
