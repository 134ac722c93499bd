package http

import (
	"github.com/gofiber/fiber/v2"

	appstate "github.com/jhoicas/feria-pos/internal/application/state"
)

// SnapshotHandler expone el snapshot completo y las ventas.
type SnapshotHandler struct {
	state *appstate.StateUseCase
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(state *appstate.StateUseCase) *SnapshotHandler {
	return &SnapshotHandler{state: state}
}

// Get godoc
// @Summary      Snapshot completo
// @Tags         snapshot
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.AppData
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/snapshot [get]
func (h *SnapshotHandler) Get(c *fiber.Ctx) error {
	snap, err := h.state.Snapshot()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(snap)
}
