package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category agrupa los productos del catálogo de feria.
type Category string

// Categorías válidas (valores persistidos tal cual en el snapshot).
const (
	CategoryIce    Category = "Hielo"
	CategoryBeer   Category = "Cerveza"
	CategorySoda   Category = "Refresco"
	CategoryLiquor Category = "Licor"
)

// Categories devuelve las categorías en el orden de presentación del tablero.
func Categories() []Category {
	return []Category{CategoryIce, CategoryBeer, CategorySoda, CategoryLiquor}
}

// IsValid indica si la categoría es conocida.
func (c Category) IsValid() bool {
	for _, candidate := range Categories() {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory convierte texto libre en Category.
func ParseCategory(value string) (Category, error) {
	c := Category(value)
	if !c.IsValid() {
		return "", fmt.Errorf("categoría inválida %q", value)
	}
	return c, nil
}

// Product representa un SKU del catálogo. Inmutable dentro del núcleo de estado.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        Category        `json:"category"`
	AcquisitionCost decimal.Decimal `json:"acquisitionCost" swaggertype:"string"`
	SalePrice       decimal.Decimal `json:"salePrice" swaggertype:"string"`
}
