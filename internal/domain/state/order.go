package state

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// CreateOrder antepone un pedido Pendiente. No toca inventario ni saldos.
func CreateOrder(snap entity.AppData, order entity.Order, role entity.Role) (entity.AppData, error) {
	if err := Authorize(role, access.OpCreateOrder); err != nil {
		return snap, err
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	if err := validateOrder(snap, order); err != nil {
		return snap, fmt.Errorf("crear pedido: %w", err)
	}

	next := snap.Clone()
	order.Items = append([]entity.SaleItem(nil), order.Items...)
	next.Orders = append([]entity.Order{order}, next.Orders...)
	return next, nil
}

func validateOrder(snap entity.AppData, order entity.Order) error {
	var errs error
	if order.ID == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: id de pedido vacío", domain.ErrInvalidInput))
	} else if snap.OrderIndex(order.ID) >= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: pedido %q", domain.ErrDuplicate, order.ID))
	}
	if order.Status != entity.OrderStatusPending {
		errs = multierr.Append(errs, fmt.Errorf("%w: un pedido nuevo debe estar %q, no %q",
			domain.ErrInvalidInput, entity.OrderStatusPending, order.Status))
	}
	if snap.CustomerIndex(order.CustomerID) < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: cliente %q", domain.ErrNotFound, order.CustomerID))
	}
	return multierr.Append(errs, validateItems(snap, order.Items, order.Total))
}

// SetOrderStatus procesa un pedido Pendiente hacia Completado o Cancelado.
// Los estados terminales no admiten más transiciones. Completar no genera venta ni mueve inventario.
func SetOrderStatus(snap entity.AppData, orderID string, status entity.OrderStatus, role entity.Role) (entity.AppData, error) {
	if err := Authorize(role, access.OpSetOrderStatus); err != nil {
		return snap, err
	}
	if !status.IsValid() {
		return snap, fmt.Errorf("procesar pedido: %w: estado %q", domain.ErrInvalidInput, status)
	}
	if !status.IsTerminal() {
		return snap, fmt.Errorf("procesar pedido: %w: estado destino %q", domain.ErrInvalidStateTransition, status)
	}
	idx := snap.OrderIndex(orderID)
	if idx < 0 {
		return snap, fmt.Errorf("procesar pedido: %w: pedido %q", domain.ErrNotFound, orderID)
	}
	if current := snap.Orders[idx].Status; current != entity.OrderStatusPending {
		return snap, fmt.Errorf("procesar pedido: %w: %q -> %q", domain.ErrInvalidStateTransition, current, status)
	}

	next := snap.Clone()
	next.Orders[idx].Status = status
	return next, nil
}
