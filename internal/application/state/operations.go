package state

import (
	"context"
	"fmt"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
	core "github.com/jhoicas/feria-pos/internal/domain/state"
)

// precheck revisa el permiso antes que el cuerpo: un rol sin derechos recibe PERMISSION_DENIED
// aunque la petición también sea inválida.
func (uc *StateUseCase) precheck(actor Actor, op access.Operation, req any) error {
	if err := core.Authorize(actor.Role, op); err != nil {
		return uc.reject(actor, op, err)
	}
	if req == nil {
		return nil
	}
	if err := dto.Validate(req); err != nil {
		return uc.reject(actor, op, err)
	}
	return nil
}

// buildItems arma las partidas; sin precio se usa el precio de venta del catálogo.
func buildItems(snap entity.AppData, in []dto.SaleItemRequest) []entity.SaleItem {
	items := make([]entity.SaleItem, 0, len(in))
	for _, it := range in {
		item := entity.SaleItem{ProductID: it.ProductID, Quantity: it.Quantity}
		if it.Price != nil {
			item.Price = *it.Price
		} else if p, ok := snap.ProductByID(it.ProductID); ok {
			item.Price = p.SalePrice
		}
		items = append(items, item)
	}
	return items
}

// RecordSale registra una venta; el operador es el usuario de la sesión.
func (uc *StateUseCase) RecordSale(ctx context.Context, actor Actor, req dto.RecordSaleRequest) (entity.Sale, error) {
	if err := uc.precheck(actor, access.OpRecordSale, &req); err != nil {
		return entity.Sale{}, err
	}
	var sale entity.Sale
	_, err := uc.apply(ctx, actor, access.OpRecordSale, func(snap entity.AppData) (entity.AppData, string, error) {
		sale = entity.Sale{
			ID:            req.ID,
			Date:          uc.now().UTC(),
			CustomerID:    req.CustomerID,
			WarehouseID:   req.WarehouseID,
			Items:         buildItems(snap, req.Items),
			PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
			OperatorID:    actor.UserID,
		}
		if sale.ID == "" {
			sale.ID = uc.newID("SALE")
		}
		if req.Date != nil {
			sale.Date = req.Date.UTC()
		}
		sale.Total = entity.ItemsTotal(sale.Items)
		if req.Total != nil {
			sale.Total = *req.Total
		}
		next, err := core.RecordSale(snap, sale, actor.Role)
		return next, sale.ID, err
	})
	if err != nil {
		return entity.Sale{}, err
	}
	return sale, nil
}

// RegisterPayment abona amount a la deuda del cliente.
func (uc *StateUseCase) RegisterPayment(ctx context.Context, actor Actor, customerID string, req dto.PaymentRequest) (entity.Customer, error) {
	if err := uc.precheck(actor, access.OpAdjustBalance, &req); err != nil {
		return entity.Customer{}, err
	}
	next, err := uc.apply(ctx, actor, access.OpAdjustBalance, func(snap entity.AppData) (entity.AppData, string, error) {
		next, err := core.AdjustCustomerBalance(snap, customerID, req.Amount, actor.Role)
		return next, customerID, err
	})
	if err != nil {
		return entity.Customer{}, err
	}
	c, _ := next.CustomerByID(customerID)
	return c, nil
}

// CreateOrder registra un pedido de preventa; el promotor es el usuario de la sesión.
func (uc *StateUseCase) CreateOrder(ctx context.Context, actor Actor, req dto.CreateOrderRequest) (entity.Order, error) {
	if err := uc.precheck(actor, access.OpCreateOrder, &req); err != nil {
		return entity.Order{}, err
	}
	var order entity.Order
	_, err := uc.apply(ctx, actor, access.OpCreateOrder, func(snap entity.AppData) (entity.AppData, string, error) {
		order = entity.Order{
			ID:         req.ID,
			Date:       uc.now().UTC(),
			CustomerID: req.CustomerID,
			Items:      buildItems(snap, req.Items),
			Status:     entity.OrderStatus(req.Status),
			PromoterID: actor.UserID,
		}
		if order.ID == "" {
			order.ID = uc.newID("ORD")
		}
		if order.Status == "" {
			order.Status = entity.OrderStatusPending
		}
		if req.Date != nil {
			order.Date = req.Date.UTC()
		}
		order.Total = entity.ItemsTotal(order.Items)
		if req.Total != nil {
			order.Total = *req.Total
		}
		next, err := core.CreateOrder(snap, order, actor.Role)
		return next, order.ID, err
	})
	if err != nil {
		return entity.Order{}, err
	}
	return order, nil
}

// SetOrderStatus completa o cancela un pedido pendiente.
func (uc *StateUseCase) SetOrderStatus(ctx context.Context, actor Actor, orderID string, req dto.SetOrderStatusRequest) (entity.Order, error) {
	if err := uc.precheck(actor, access.OpSetOrderStatus, &req); err != nil {
		return entity.Order{}, err
	}
	next, err := uc.apply(ctx, actor, access.OpSetOrderStatus, func(snap entity.AppData) (entity.AppData, string, error) {
		next, err := core.SetOrderStatus(snap, orderID, entity.OrderStatus(req.Status), actor.Role)
		return next, orderID, err
	})
	if err != nil {
		return entity.Order{}, err
	}
	return next.Orders[next.OrderIndex(orderID)], nil
}

// CreateTransfer despacha mercancía de una bodega a otra (queda En Camino).
func (uc *StateUseCase) CreateTransfer(ctx context.Context, actor Actor, req dto.CreateTransferRequest) (entity.Transfer, error) {
	if err := uc.precheck(actor, access.OpCreateTransfer, &req); err != nil {
		return entity.Transfer{}, err
	}
	var transfer entity.Transfer
	_, err := uc.apply(ctx, actor, access.OpCreateTransfer, func(snap entity.AppData) (entity.AppData, string, error) {
		transfer = entity.Transfer{
			ID:                     req.ID,
			Date:                   uc.now().UTC(),
			OriginWarehouseID:      req.OriginWarehouseID,
			DestinationWarehouseID: req.DestinationWarehouseID,
			ProductID:              req.ProductID,
			Quantity:               req.Quantity,
			Status:                 entity.TransferStatusEnRoute,
		}
		if transfer.ID == "" {
			transfer.ID = uc.newID("TRF")
		}
		if req.Date != nil {
			transfer.Date = req.Date.UTC()
		}
		next, err := core.CreateTransfer(snap, transfer, actor.Role)
		return next, transfer.ID, err
	})
	if err != nil {
		return entity.Transfer{}, err
	}
	return transfer, nil
}

// ReceiveTransfer acredita un traspaso en la bodega destino.
func (uc *StateUseCase) ReceiveTransfer(ctx context.Context, actor Actor, transferID string) (entity.Transfer, error) {
	if err := uc.precheck(actor, access.OpReceiveTransfer, nil); err != nil {
		return entity.Transfer{}, err
	}
	next, err := uc.apply(ctx, actor, access.OpReceiveTransfer, func(snap entity.AppData) (entity.AppData, string, error) {
		next, err := core.ReceiveTransfer(snap, transferID, actor.Role)
		return next, transferID, err
	})
	if err != nil {
		return entity.Transfer{}, err
	}
	return next.Transfers[next.TransferIndex(transferID)], nil
}

// AdjustInventory corrige la existencia de un par producto × bodega (solo MASTER).
func (uc *StateUseCase) AdjustInventory(ctx context.Context, actor Actor, req dto.AdjustInventoryRequest) (entity.InventoryItem, error) {
	if err := uc.precheck(actor, access.OpAdjustInventory, &req); err != nil {
		return entity.InventoryItem{}, err
	}
	next, err := uc.apply(ctx, actor, access.OpAdjustInventory, func(snap entity.AppData) (entity.AppData, string, error) {
		next, err := core.AdjustInventory(snap, req.ProductID, req.WarehouseID, req.Delta, actor.Role)
		return next, fmt.Sprintf("%s@%s", req.ProductID, req.WarehouseID), err
	})
	if err != nil {
		return entity.InventoryItem{}, err
	}
	return next.Inventory[next.InventoryIndex(req.ProductID, req.WarehouseID)], nil
}
