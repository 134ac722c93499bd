package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
)

// TransferHandler traspasos entre bodegas.
type TransferHandler struct {
	state *appstate.StateUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(state *appstate.StateUseCase) *TransferHandler {
	return &TransferHandler{state: state}
}

// Create godoc
// @Summary      Despachar traspaso entre bodegas
// @Tags         logistica
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Traspaso"
// @Success      201  {object}  entity.Transfer
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	transfer, err := h.state.CreateTransfer(c.Context(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transfer)
}

// Receive godoc
// @Summary      Recibir traspaso en camino
// @Tags         logistica
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del traspaso"
// @Success      200  {object}  entity.Transfer
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/receive [post]
func (h *TransferHandler) Receive(c *fiber.Ctx) error {
	transfer, err := h.state.ReceiveTransfer(c.Context(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(transfer)
}
