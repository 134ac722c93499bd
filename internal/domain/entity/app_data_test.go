package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

func TestClone_EsCopiaProfunda(t *testing.T) {
	orig := entity.AppData{
		Inventory: []entity.InventoryItem{{ProductID: "p1", WarehouseID: "w1", Quantity: 10}},
		Customers: []entity.Customer{{ID: "c1", Balance: decimal.NewFromInt(5)}},
		Sales:     []entity.Sale{{ID: "s1", Items: []entity.SaleItem{{ProductID: "p1", Quantity: 1}}}},
		Orders:    []entity.Order{{ID: "o1", Items: []entity.SaleItem{{ProductID: "p1", Quantity: 2}}}},
	}

	cp := orig.Clone()
	cp.Inventory[0].Quantity = 99
	cp.Customers[0].Balance = decimal.NewFromInt(1)
	cp.Sales[0].Items[0].Quantity = 50
	cp.Orders[0].Items[0].Quantity = 60

	assert.Equal(t, int64(10), orig.Inventory[0].Quantity)
	assert.True(t, orig.Customers[0].Balance.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, int64(1), orig.Sales[0].Items[0].Quantity)
	assert.Equal(t, int64(2), orig.Orders[0].Items[0].Quantity)
}

func TestClone_ColeccionesVaciasComoArreglo(t *testing.T) {
	orig := entity.AppData{
		Products: []entity.Product{{ID: "p1"}},
		Sales:    []entity.Sale{{ID: "s1"}},
	}

	b, err := json.Marshal(orig.Clone())
	require.NoError(t, err)
	out := string(b)

	for _, key := range []string{"warehouses", "inventory", "customers", "orders", "transfers"} {
		assert.Contains(t, out, `"`+key+`":[]`, "colección %s", key)
	}
	assert.Contains(t, out, `"items":[]`)
	assert.NotContains(t, out, "null")

	b, err = json.Marshal(entity.AppData{}.Clone())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "null")
}

func TestEnsureInventory_CompletaProductoCartesiano(t *testing.T) {
	d := entity.AppData{
		Products:   []entity.Product{{ID: "p1"}, {ID: "p2"}},
		Warehouses: []entity.Warehouse{{ID: "w1"}, {ID: "w2"}},
		Inventory:  []entity.InventoryItem{{ProductID: "p1", WarehouseID: "w1", Quantity: 3}},
	}
	require.Len(t, d.MissingInventoryPairs(), 3)

	added := d.EnsureInventory()
	assert.Equal(t, 3, added)
	assert.Empty(t, d.MissingInventoryPairs())
	assert.Equal(t, int64(3), d.Inventory[d.InventoryIndex("p1", "w1")].Quantity)
	assert.Equal(t, int64(0), d.Inventory[d.InventoryIndex("p2", "w2")].Quantity)
}

func TestJSON_FormatoPersistido(t *testing.T) {
	raw := `{"products":[{"id":"p1","name":"Tarima","category":"Hielo","acquisitionCost":1800,"salePrice":2070}],
	"warehouses":[],"inventory":[],"customers":[],
	"sales":[{"id":"s1","date":"2026-04-20T18:30:00.000Z","customerId":"c1","warehouseId":"w2",
	"items":[{"productId":"p1","quantity":2,"price":2070}],"total":4140,"paymentMethod":"Consignación","operatorId":"op1"}],
	"orders":[],"transfers":[{"id":"TRF-1","date":"2026-04-20T18:30:00Z","originWarehouseId":"w1",
	"destinationWarehouseId":"w2","productId":"p1","quantity":50,"status":"En Camino"}]}`

	var d entity.AppData
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	assert.Equal(t, entity.CategoryIce, d.Products[0].Category)
	assert.True(t, d.Products[0].SalePrice.Equal(decimal.NewFromInt(2070)))
	assert.Equal(t, entity.PaymentMethodConsignment, d.Sales[0].PaymentMethod)
	assert.True(t, d.Sales[0].Total.Equal(entity.ItemsTotal(d.Sales[0].Items)))
	assert.Equal(t, entity.TransferStatusEnRoute, d.Transfers[0].Status)
	assert.Equal(t, int64(50), d.Transfers[0].Quantity)
}

func TestParseEnums(t *testing.T) {
	r, err := entity.ParseRole("PROMOTOR")
	require.NoError(t, err)
	assert.Equal(t, entity.RolePromoter, r)
	_, err = entity.ParseRole("root")
	assert.Error(t, err)

	_, err = entity.ParsePaymentMethod("Tarjeta")
	assert.Error(t, err)
	_, err = entity.ParseOrderStatus("Cancelado")
	assert.NoError(t, err)
	_, err = entity.ParseTransferStatus("Perdido")
	assert.Error(t, err)
	_, err = entity.ParseCategory("Licor")
	assert.NoError(t, err)

	assert.True(t, entity.OrderStatusCompleted.IsTerminal())
	assert.False(t, entity.OrderStatusPending.IsTerminal())
}
