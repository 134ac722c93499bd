package entity

import "github.com/shopspring/decimal"

// Customer representa un comercio de la feria.
// Balance positivo = el cliente debe dinero (consignación pendiente).
type Customer struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Zone         string          `json:"zone"`
	Balance      decimal.Decimal `json:"balance" swaggertype:"string"`
	TradeName    string          `json:"tradeName"`
	BusinessLine string          `json:"businessLine"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Manager      string          `json:"manager"`
}
