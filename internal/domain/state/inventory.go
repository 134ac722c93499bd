package state

import (
	"fmt"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// AdjustInventory aplica un ajuste manual (delta con signo) a un registro de inventario.
// Solo MASTER puede invocarlo; la existencia resultante no puede ser negativa.
func AdjustInventory(snap entity.AppData, productID, warehouseID string, delta int64, role entity.Role) (entity.AppData, error) {
	if err := Authorize(role, access.OpAdjustInventory); err != nil {
		return snap, err
	}
	if delta == 0 || delta > entity.MaxQuantity || delta < -entity.MaxQuantity {
		return snap, fmt.Errorf("ajustar inventario: %w: delta %d fuera de ±1..%d", domain.ErrInvalidInput, delta, entity.MaxQuantity)
	}
	idx := snap.InventoryIndex(productID, warehouseID)
	if idx < 0 {
		return snap, fmt.Errorf("ajustar inventario: %w: inventario (%s, %s)", domain.ErrNotFound, productID, warehouseID)
	}
	have := snap.Inventory[idx].Quantity
	adjusted, err := addQuantity(have, delta)
	if err != nil {
		return snap, fmt.Errorf("ajustar inventario: %w", err)
	}
	if adjusted < 0 {
		return snap, fmt.Errorf("ajustar inventario: %w: disponible %d, ajuste %d", domain.ErrInsufficientStock, have, delta)
	}

	next := snap.Clone()
	next.Inventory[idx].Quantity = adjusted
	return next, nil
}
