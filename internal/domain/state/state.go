// Package state es el núcleo de transacciones sobre el snapshot AppData.
//
// Cada operación recibe el snapshot actual, valida el permiso del rol y todas las
// referencias antes de mutar (pre-flight), y devuelve un snapshot nuevo. El snapshot de
// entrada nunca se modifica: ante un rechazo se devuelve tal cual junto con el error.
package state

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// Authorize rechaza con ErrPermissionDenied si el rol no puede ejecutar op.
func Authorize(role entity.Role, op access.Operation) error {
	if !access.CanWrite(role, op) {
		return fmt.Errorf("%w: %q no puede ejecutar %s", domain.ErrPermissionDenied, role, op)
	}
	return nil
}

// validateItems revisa las partidas de una venta o pedido contra el catálogo y el total declarado.
func validateItems(snap entity.AppData, items []entity.SaleItem, total decimal.Decimal) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: se requiere al menos una partida", domain.ErrInvalidInput)
	}
	var errs error
	for i, it := range items {
		if snap.ProductIndex(it.ProductID) < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: partida %d, producto %q", domain.ErrNotFound, i, it.ProductID))
		}
		if it.Quantity <= 0 || it.Quantity > entity.MaxQuantity {
			errs = multierr.Append(errs, fmt.Errorf("%w: partida %d, cantidad %d fuera de 1..%d",
				domain.ErrInvalidInput, i, it.Quantity, entity.MaxQuantity))
		}
		if it.Price.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("%w: partida %d, precio %s", domain.ErrInvalidInput, i, it.Price))
		}
	}
	if sum := entity.ItemsTotal(items); !sum.Equal(total) {
		errs = multierr.Append(errs, fmt.Errorf("%w: total %s, partidas %s", domain.ErrTotalMismatch, total, sum))
	}
	return errs
}

// requireInventory comprueba que existan los registros de inventario y que alcancen
// para descontar las cantidades pedidas (agregadas por producto).
func requireInventory(snap entity.AppData, warehouseID string, need map[string]int64, order []string) error {
	var errs error
	for _, productID := range order {
		idx := snap.InventoryIndex(productID, warehouseID)
		if idx < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: inventario (%s, %s)", domain.ErrNotFound, productID, warehouseID))
			continue
		}
		if have := snap.Inventory[idx].Quantity; have < need[productID] {
			errs = multierr.Append(errs, fmt.Errorf("%w: producto %s en %s, disponible %d, requerido %d",
				domain.ErrInsufficientStock, productID, warehouseID, have, need[productID]))
		}
	}
	return errs
}

// aggregate suma las cantidades por producto conservando el orden de primera aparición.
func aggregate(items []entity.SaleItem) (map[string]int64, []string, error) {
	need := make(map[string]int64, len(items))
	var order []string
	for _, it := range items {
		if _, seen := need[it.ProductID]; !seen {
			order = append(order, it.ProductID)
		}
		sum, err := addQuantity(need[it.ProductID], it.Quantity)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: producto %s", err, it.ProductID)
		}
		need[it.ProductID] = sum
	}
	return need, order, nil
}

// addQuantity suma dos cantidades y rechaza el resultado si desborda int64.
func addQuantity(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d desborda la cantidad", domain.ErrInvalidInput, a, b)
	}
	return a + b, nil
}
