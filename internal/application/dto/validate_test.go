package dto

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feria-pos/internal/domain"
)

func TestValidate_DetallePorCampo(t *testing.T) {
	err := Validate(&RecordSaleRequest{
		WarehouseID: "w2",
		Items:       []SaleItemRequest{{ProductID: "p1", Quantity: 0}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "es obligatorio", verr.Fields["customerId"])
	assert.Equal(t, "es obligatorio", verr.Fields["paymentMethod"])
	assert.Equal(t, "debe ser mayor que 0", verr.Fields["items[0].quantity"])
	assert.NotContains(t, verr.Fields, "warehouseId")
}

func TestValidate_SinPartidas(t *testing.T) {
	err := Validate(&CreateOrderRequest{CustomerID: "c1", Items: []SaleItemRequest{}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items")
}

func TestValidate_AjusteCero(t *testing.T) {
	err := Validate(&AdjustInventoryRequest{ProductID: "p1", WarehouseID: "w1"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "debe ser distinto de 0", verr.Fields["delta"])

	assert.NoError(t, Validate(&AdjustInventoryRequest{ProductID: "p1", WarehouseID: "w1", Delta: -3}))
}

func TestValidate_TopesDeCantidad(t *testing.T) {
	err := Validate(&CreateTransferRequest{
		OriginWarehouseID: "w1", DestinationWarehouseID: "w2", ProductID: "p1", Quantity: math.MaxInt64,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "debe ser menor o igual que 1000000000", verr.Fields["quantity"])

	err = Validate(&AdjustInventoryRequest{ProductID: "p1", WarehouseID: "w1", Delta: math.MinInt64})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "debe ser mayor o igual que -1000000000", verr.Fields["delta"])

	err = Validate(&RecordSaleRequest{
		CustomerID: "c1", WarehouseID: "w2", PaymentMethod: "Contado",
		Items: []SaleItemRequest{{ProductID: "p1", Quantity: math.MaxInt64}},
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "debe ser menor o igual que 1000000000", verr.Fields["items[0].quantity"])
}
