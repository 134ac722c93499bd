package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pago de una venta.
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "Contado"
	PaymentMethodConsignment PaymentMethod = "Consignación"
)

// IsValid indica si la forma de pago es conocida.
func (p PaymentMethod) IsValid() bool {
	return p == PaymentMethodCash || p == PaymentMethodConsignment
}

// ParsePaymentMethod convierte texto libre en PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	p := PaymentMethod(value)
	if !p.IsValid() {
		return "", fmt.Errorf("forma de pago inválida %q", value)
	}
	return p, nil
}

// SaleItem es una línea de venta o pedido. Price es el precio unitario aplicado.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
}

// Subtotal devuelve Quantity × Price.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// ItemsTotal suma los subtotales de las líneas.
func ItemsTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Sale representa una venta registrada. Inmutable una vez creada.
type Sale struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	CustomerID    string          `json:"customerId"`
	WarehouseID   string          `json:"warehouseId"`
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total" swaggertype:"string"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	OperatorID    string          `json:"operatorId"`
}
