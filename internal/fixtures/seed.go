// Package fixtures contiene el catálogo inicial de la Feria Tabasco 2026: productos, bodegas, padrón de
// clientes, ventas de arranque e inventario.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

const (
	// InitialStock existencia de arranque de cada producto en cada bodega.
	InitialStock = 1000
	// HistoricSales número de ventas históricas sintéticas.
	HistoricSales = 40
	// MaxSeedBalance tope (exclusivo) del saldo aleatorio de arranque.
	MaxSeedBalance = 80000
)

// Margin margen aplicado al costo de adquisición para obtener el precio de venta.
var Margin = decimal.RequireFromString("1.15")

//go:embed customers.csv
var customersCSV []byte

// SalePrice redondea costo × margen al entero más cercano.
func SalePrice(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(Margin).Round(0)
}

func product(id, name string, cat entity.Category, cost int64) entity.Product {
	c := decimal.NewFromInt(cost)
	return entity.Product{ID: id, Name: name, Category: cat, AcquisitionCost: c, SalePrice: SalePrice(c)}
}

// Products catálogo de 12 productos.
func Products() []entity.Product {
	return []entity.Product{
		product("p1", "Tarima Hielo Cúbico (100 bolsas)", entity.CategoryIce, 1800),
		product("p2", "Tonelada Hielo en Escama", entity.CategoryIce, 1200),
		product("p3", "Costal Hielo Frappé 20kg (Pack 50)", entity.CategoryIce, 2500),
		product("p4", "Pallet Corona Extra 355ml (80 cajas)", entity.CategoryBeer, 28000),
		product("p5", "Pallet Victoria 1.2L (50 cajas)", entity.CategoryBeer, 19500),
		product("p6", "Lote Modelo Especial Lata (100 charolas)", entity.CategoryBeer, 45000),
		product("p7", "Caja Maestro Dobel (12 botellas)", entity.CategoryLiquor, 7200),
		product("p8", "Caja Don Julio 70 (12 botellas)", entity.CategoryLiquor, 10800),
		product("p9", "Caja J. Walker Black (12 botellas)", entity.CategoryLiquor, 9600),
		product("p10", "Caja Mezcal 400 Conejos (12 botellas)", entity.CategoryLiquor, 5400),
		product("p11", "Pallet Coca Cola 600ml (60 cajas)", entity.CategorySoda, 18000),
		product("p12", "Pallet Mineral Topo Chico (50 cajas)", entity.CategorySoda, 16500),
	}
}

// Warehouses las tres bodegas de la operación.
func Warehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{ID: "w1", Name: "CEDIS Matriz Villahermosa", Location: "Centro"},
		{ID: "w2", Name: "Bodega Operativa Feria", Location: "Naves Feria"},
		{ID: "w3", Name: "Unidad de Reparto 01", Location: "Zona Móvil"},
	}
}

// Customers padrón embebido con saldos de arranque: ~30% de los clientes debe un monto aleatorio.
func Customers(rng *rand.Rand) ([]entity.Customer, error) {
	list, err := ParseCustomersCSV(bytes.NewReader(customersCSV), false)
	if err != nil {
		return nil, fmt.Errorf("padrón embebido: %w", err)
	}
	for i := range list {
		if rng.Float64() > 0.7 {
			list[i].Balance = decimal.NewFromFloat(math.Floor(rng.Float64() * MaxSeedBalance))
		}
	}
	return list, nil
}

// Inventory existencia InitialStock para cada par producto × bodega.
func Inventory(products []entity.Product, warehouses []entity.Warehouse) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0, len(products)*len(warehouses))
	for _, p := range products {
		for _, w := range warehouses {
			out = append(out, entity.InventoryItem{ProductID: p.ID, WarehouseID: w.ID, Quantity: InitialStock})
		}
	}
	return out
}

func starterSale(id string, date time.Time, customerID, productID string, qty, price int64, method entity.PaymentMethod) entity.Sale {
	items := []entity.SaleItem{{ProductID: productID, Quantity: qty, Price: decimal.NewFromInt(price)}}
	return entity.Sale{
		ID:            id,
		Date:          date,
		CustomerID:    customerID,
		WarehouseID:   "w2",
		Items:         items,
		Total:         entity.ItemsTotal(items),
		PaymentMethod: method,
		OperatorID:    "op1",
	}
}

// Sales las seis ventas de arranque (hoy y ayer) más HistoricSales ventas históricas de los últimos cinco días.
// Las históricas llevan un total aleatorio entre 45,000 y 194,999 que no corresponde a sus partidas;
// solo alimentan el avance de la meta y la tendencia del tablero.
func Sales(rng *rand.Rand, now time.Time, customerCount int) []entity.Sale {
	today, yesterday := now, now.AddDate(0, 0, -1)
	out := []entity.Sale{
		starterSale("s1", today, "c10", "p6", 2, 51750, entity.PaymentMethodCash),
		starterSale("s2", today, "c25", "p4", 3, 32200, entity.PaymentMethodConsignment),
		starterSale("s3", today, "c50", "p8", 5, 12420, entity.PaymentMethodCash),
		starterSale("s4", yesterday, "c7", "p5", 4, 22425, entity.PaymentMethodCash),
		starterSale("s5", yesterday, "c32", "p6", 3, 51750, entity.PaymentMethodConsignment),
		starterSale("s6", yesterday, "c18", "p9", 8, 11040, entity.PaymentMethodCash),
	}
	if customerCount <= 0 {
		return out
	}
	for i := 0; i < HistoricSales; i++ {
		s := starterSale(fmt.Sprintf("sh-%d", i), now.AddDate(0, 0, -rng.IntN(5)),
			fmt.Sprintf("c%d", rng.IntN(customerCount)+1), "p6", 2, 51750, entity.PaymentMethodCash)
		s.Total = decimal.NewFromInt(int64(rng.IntN(150000) + 45000))
		out = append(out, s)
	}
	return out
}

// Seed arma el snapshot inicial completo con la fecha now como "hoy".
func Seed(rng *rand.Rand, now time.Time) (entity.AppData, error) {
	customers, err := Customers(rng)
	if err != nil {
		return entity.AppData{}, err
	}
	products, warehouses := Products(), Warehouses()
	return entity.AppData{
		Products:   products,
		Warehouses: warehouses,
		Inventory:  Inventory(products, warehouses),
		Customers:  customers,
		Sales:      Sales(rng, now, len(customers)),
		Orders:     []entity.Order{},
		Transfers:  []entity.Transfer{},
	}, nil
}

// NewRand generador determinista para la semilla dada.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
