package state

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// RecordSale registra una venta: la antepone al historial, descuenta cada partida del
// inventario del almacén de la venta y, si es a consignación, suma el total al saldo del cliente.
func RecordSale(snap entity.AppData, sale entity.Sale, role entity.Role) (entity.AppData, error) {
	if err := Authorize(role, access.OpRecordSale); err != nil {
		return snap, err
	}
	if err := validateSale(snap, sale); err != nil {
		return snap, fmt.Errorf("registrar venta: %w", err)
	}
	need, order, err := aggregate(sale.Items)
	if err != nil {
		return snap, fmt.Errorf("registrar venta: %w", err)
	}
	if err := requireInventory(snap, sale.WarehouseID, need, order); err != nil {
		return snap, fmt.Errorf("registrar venta: %w", err)
	}

	next := snap.Clone()
	for _, it := range sale.Items {
		next.Inventory[next.InventoryIndex(it.ProductID, sale.WarehouseID)].Quantity -= it.Quantity
	}
	if sale.PaymentMethod == entity.PaymentMethodConsignment {
		c := &next.Customers[next.CustomerIndex(sale.CustomerID)]
		c.Balance = c.Balance.Add(sale.Total)
	}
	sale.Items = append([]entity.SaleItem(nil), sale.Items...)
	next.Sales = append([]entity.Sale{sale}, next.Sales...)
	return next, nil
}

func validateSale(snap entity.AppData, sale entity.Sale) error {
	var errs error
	if sale.ID == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: id de venta vacío", domain.ErrInvalidInput))
	} else if snap.SaleIndex(sale.ID) >= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: venta %q", domain.ErrDuplicate, sale.ID))
	}
	if !sale.PaymentMethod.IsValid() {
		errs = multierr.Append(errs, fmt.Errorf("%w: forma de pago %q", domain.ErrInvalidInput, sale.PaymentMethod))
	}
	if snap.WarehouseIndex(sale.WarehouseID) < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: almacén %q", domain.ErrNotFound, sale.WarehouseID))
	}
	if snap.CustomerIndex(sale.CustomerID) < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: cliente %q", domain.ErrNotFound, sale.CustomerID))
	}
	return multierr.Append(errs, validateItems(snap, sale.Items, sale.Total))
}
