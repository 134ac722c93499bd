package state

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// CreateTransfer antepone un traspaso En Camino y descuenta de inmediato la cantidad del almacén de origen.
// El destino se acredita hasta ReceiveTransfer (mercancía en tránsito).
func CreateTransfer(snap entity.AppData, transfer entity.Transfer, role entity.Role) (entity.AppData, error) {
	if err := Authorize(role, access.OpCreateTransfer); err != nil {
		return snap, err
	}
	if transfer.OriginWarehouseID == transfer.DestinationWarehouseID {
		return snap, fmt.Errorf("crear traspaso: %w: %q", domain.ErrInvalidTransferRoute, transfer.OriginWarehouseID)
	}
	if transfer.Status == "" {
		transfer.Status = entity.TransferStatusEnRoute
	}
	if err := validateTransfer(snap, transfer); err != nil {
		return snap, fmt.Errorf("crear traspaso: %w", err)
	}
	need := map[string]int64{transfer.ProductID: transfer.Quantity}
	if err := requireInventory(snap, transfer.OriginWarehouseID, need, []string{transfer.ProductID}); err != nil {
		return snap, fmt.Errorf("crear traspaso: %w", err)
	}

	next := snap.Clone()
	next.Inventory[next.InventoryIndex(transfer.ProductID, transfer.OriginWarehouseID)].Quantity -= transfer.Quantity
	next.Transfers = append([]entity.Transfer{transfer}, next.Transfers...)
	return next, nil
}

func validateTransfer(snap entity.AppData, t entity.Transfer) error {
	var errs error
	if t.ID == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: id de traspaso vacío", domain.ErrInvalidInput))
	} else if snap.TransferIndex(t.ID) >= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: traspaso %q", domain.ErrDuplicate, t.ID))
	}
	if t.Status != entity.TransferStatusEnRoute {
		errs = multierr.Append(errs, fmt.Errorf("%w: un traspaso nuevo debe estar %q, no %q",
			domain.ErrInvalidInput, entity.TransferStatusEnRoute, t.Status))
	}
	if t.Quantity <= 0 || t.Quantity > entity.MaxQuantity {
		errs = multierr.Append(errs, fmt.Errorf("%w: cantidad %d fuera de 1..%d",
			domain.ErrInvalidInput, t.Quantity, entity.MaxQuantity))
	}
	productOK := snap.ProductIndex(t.ProductID) >= 0
	if !productOK {
		errs = multierr.Append(errs, fmt.Errorf("%w: producto %q", domain.ErrNotFound, t.ProductID))
	}
	for _, wh := range []string{t.OriginWarehouseID, t.DestinationWarehouseID} {
		if snap.WarehouseIndex(wh) < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: almacén %q", domain.ErrNotFound, wh))
		}
	}
	// El par de destino se valida junto con los demás errores.
	if productOK && snap.WarehouseIndex(t.DestinationWarehouseID) >= 0 &&
		snap.InventoryIndex(t.ProductID, t.DestinationWarehouseID) < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: inventario (%s, %s)", domain.ErrNotFound, t.ProductID, t.DestinationWarehouseID))
	}
	return errs
}

// ReceiveTransfer marca un traspaso En Camino como Recibido y acredita la cantidad al destino.
// Recibir dos veces el mismo traspaso se rechaza.
func ReceiveTransfer(snap entity.AppData, transferID string, role entity.Role) (entity.AppData, error) {
	if err := Authorize(role, access.OpReceiveTransfer); err != nil {
		return snap, err
	}
	idx := snap.TransferIndex(transferID)
	if idx < 0 {
		return snap, fmt.Errorf("recibir traspaso: %w: traspaso %q", domain.ErrNotFound, transferID)
	}
	t := snap.Transfers[idx]
	if t.Status != entity.TransferStatusEnRoute {
		return snap, fmt.Errorf("recibir traspaso: %w: %q ya está %q", domain.ErrInvalidStateTransition, t.ID, t.Status)
	}
	inv := snap.InventoryIndex(t.ProductID, t.DestinationWarehouseID)
	if inv < 0 {
		return snap, fmt.Errorf("recibir traspaso: %w: inventario (%s, %s)", domain.ErrNotFound, t.ProductID, t.DestinationWarehouseID)
	}
	credited, err := addQuantity(snap.Inventory[inv].Quantity, t.Quantity)
	if err != nil {
		return snap, fmt.Errorf("recibir traspaso: %w", err)
	}

	next := snap.Clone()
	next.Transfers[idx].Status = entity.TransferStatusReceived
	next.Inventory[inv].Quantity = credited
	return next, nil
}
