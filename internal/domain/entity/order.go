package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido de preventa.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pendiente"
	OrderStatusCompleted OrderStatus = "Completado"
	OrderStatusCancelled OrderStatus = "Cancelado"
)

// IsValid indica si el estado es conocido.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal indica si el estado ya no admite transiciones.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ParseOrderStatus convierte texto libre en OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	s := OrderStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("estado de pedido inválido %q", value)
	}
	return s, nil
}

// Order es un pedido levantado por un promotor; no afecta inventario ni saldos.
type Order struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"date"`
	CustomerID string          `json:"customerId"`
	Items      []SaleItem      `json:"items"`
	Total      decimal.Decimal `json:"total" swaggertype:"string"`
	Status     OrderStatus     `json:"status"`
	PromoterID string          `json:"promoterId"`
}
