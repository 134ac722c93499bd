package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest partida de venta o pedido. Sin price se toma el precio de venta del catálogo.
type SaleItemRequest struct {
	ProductID string           `json:"productId" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"gt=0,lte=1000000000"`
	Price     *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
}

// RecordSaleRequest body para POST /api/sales. Sin total se calcula de las partidas;
// con total, debe coincidir.
type RecordSaleRequest struct {
	ID            string            `json:"id,omitempty"`
	Date          *time.Time        `json:"date,omitempty"`
	CustomerID    string            `json:"customerId" validate:"required"`
	WarehouseID   string            `json:"warehouseId" validate:"required"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Total         *decimal.Decimal  `json:"total,omitempty" swaggertype:"string"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
}

// PaymentRequest body para POST /api/customers/:id/payments (abono a la deuda).
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	ID         string            `json:"id,omitempty"`
	Date       *time.Time        `json:"date,omitempty"`
	CustomerID string            `json:"customerId" validate:"required"`
	Items      []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Total      *decimal.Decimal  `json:"total,omitempty" swaggertype:"string"`
	Status     string            `json:"status,omitempty"`
}

// SetOrderStatusRequest body para PATCH /api/orders/:id/status.
type SetOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	ID                     string     `json:"id,omitempty"`
	Date                   *time.Time `json:"date,omitempty"`
	OriginWarehouseID      string     `json:"originWarehouseId" validate:"required"`
	DestinationWarehouseID string     `json:"destinationWarehouseId" validate:"required"`
	ProductID              string     `json:"productId" validate:"required"`
	Quantity               int64      `json:"quantity" validate:"gt=0,lte=1000000000"`
}

// AdjustInventoryRequest body para POST /api/inventory/adjustments (conteo físico, solo MASTER).
type AdjustInventoryRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	WarehouseID string `json:"warehouseId" validate:"required"`
	Delta       int64  `json:"delta" validate:"ne=0,gte=-1000000000,lte=1000000000"`
}
