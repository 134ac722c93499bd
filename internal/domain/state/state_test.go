package state_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/internal/domain/state"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testDate = time.Date(2026, 4, 20, 18, 30, 0, 0, time.UTC)

// newSnapshot construye un snapshot mínimo: 2 productos × 2 almacenes con 1000 unidades y 2 clientes en 0.
func newSnapshot() entity.AppData {
	snap := entity.AppData{
		Products: []entity.Product{
			{ID: "p1", Name: "Tarima Hielo Cúbico", Category: entity.CategoryIce, AcquisitionCost: decimal.NewFromInt(1800), SalePrice: decimal.NewFromInt(2070)},
			{ID: "p2", Name: "Pallet Corona Extra", Category: entity.CategoryBeer, AcquisitionCost: decimal.NewFromInt(28000), SalePrice: decimal.NewFromInt(32200)},
		},
		Warehouses: []entity.Warehouse{
			{ID: "w1", Name: "CEDIS Matriz", Location: "Centro"},
			{ID: "w2", Name: "Bodega Operativa Feria", Location: "Naves Feria"},
		},
		Customers: []entity.Customer{
			{ID: "c1", Name: "MICHES Free Zon", Zone: "Zona A", Balance: decimal.Zero},
			{ID: "c2", Name: "TRAGO", Zone: "Zona B", Balance: decimal.Zero},
		},
	}
	for _, p := range snap.Products {
		for _, w := range snap.Warehouses {
			snap.Inventory = append(snap.Inventory, entity.InventoryItem{ProductID: p.ID, WarehouseID: w.ID, Quantity: 1000})
		}
	}
	return snap
}

func qty(t *testing.T, snap entity.AppData, productID, warehouseID string) int64 {
	t.Helper()
	idx := snap.InventoryIndex(productID, warehouseID)
	require.GreaterOrEqual(t, idx, 0, "debe existir inventario (%s, %s)", productID, warehouseID)
	return snap.Inventory[idx].Quantity
}

func balance(t *testing.T, snap entity.AppData, customerID string) decimal.Decimal {
	t.Helper()
	c, ok := snap.CustomerByID(customerID)
	require.True(t, ok, "debe existir el cliente %s", customerID)
	return c.Balance
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func consignmentSale() entity.Sale {
	return entity.Sale{
		ID:            "SALE-1",
		Date:          testDate,
		CustomerID:    "c1",
		WarehouseID:   "w2",
		Items:         []entity.SaleItem{{ProductID: "p1", Quantity: 10, Price: decimal.NewFromInt(100)}},
		Total:         decimal.NewFromInt(1000),
		PaymentMethod: entity.PaymentMethodConsignment,
		OperatorID:    "op1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_ConsignacionDescuentaStockYSumaSaldo(t *testing.T) {
	snap := newSnapshot()

	next, err := state.RecordSale(snap, consignmentSale(), entity.RoleOperator)
	require.NoError(t, err)

	assert.Equal(t, int64(990), qty(t, next, "p1", "w2"))
	assert.Equal(t, int64(1000), qty(t, next, "p1", "w1"), "otro almacén no cambia")
	assert.True(t, balance(t, next, "c1").Equal(decimal.NewFromInt(1000)), "saldo debe ser 1000")
	require.Len(t, next.Sales, 1)
	assert.Equal(t, "SALE-1", next.Sales[0].ID)

	// El snapshot de entrada no se toca.
	assert.Equal(t, int64(1000), qty(t, snap, "p1", "w2"))
	assert.Empty(t, snap.Sales)
}

func TestRecordSale_ContadoNoAfectaSaldo(t *testing.T) {
	sale := consignmentSale()
	sale.PaymentMethod = entity.PaymentMethodCash

	next, err := state.RecordSale(newSnapshot(), sale, entity.RoleMaster)
	require.NoError(t, err)
	assert.True(t, balance(t, next, "c1").IsZero())
	assert.Equal(t, int64(990), qty(t, next, "p1", "w2"))
}

func TestRecordSale_VentaMasRecienteAlFrente(t *testing.T) {
	snap, err := state.RecordSale(newSnapshot(), consignmentSale(), entity.RoleOperator)
	require.NoError(t, err)

	second := consignmentSale()
	second.ID = "SALE-2"
	snap, err = state.RecordSale(snap, second, entity.RoleOperator)
	require.NoError(t, err)

	require.Len(t, snap.Sales, 2)
	assert.Equal(t, "SALE-2", snap.Sales[0].ID)
	assert.Equal(t, "SALE-1", snap.Sales[1].ID)
}

func TestRecordSale_ConservacionDeStock(t *testing.T) {
	sale := entity.Sale{
		ID:          "SALE-MULTI",
		Date:        testDate,
		CustomerID:  "c2",
		WarehouseID: "w1",
		Items: []entity.SaleItem{
			{ProductID: "p1", Quantity: 5, Price: decimal.NewFromInt(2070)},
			{ProductID: "p2", Quantity: 3, Price: decimal.NewFromInt(32200)},
			{ProductID: "p1", Quantity: 7, Price: decimal.NewFromInt(2000)},
		},
		PaymentMethod: entity.PaymentMethodCash,
	}
	sale.Total = entity.ItemsTotal(sale.Items)
	snap := newSnapshot()

	next, err := state.RecordSale(snap, sale, entity.RolePromoter)
	require.NoError(t, err)

	var before, after int64
	for _, it := range snap.Inventory {
		if it.WarehouseID == "w1" {
			before += it.Quantity
		}
	}
	for _, it := range next.Inventory {
		if it.WarehouseID == "w1" {
			after += it.Quantity
		}
	}
	assert.Equal(t, int64(15), before-after, "unidades retiradas = unidades vendidas")
	assert.Equal(t, int64(988), qty(t, next, "p1", "w1"))
	assert.Equal(t, int64(997), qty(t, next, "p2", "w1"))
}

func TestRecordSale_Rechazos(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Sale)
		want   error
	}{
		{"cliente inexistente", func(s *entity.Sale) { s.CustomerID = "c99" }, domain.ErrNotFound},
		{"almacén inexistente", func(s *entity.Sale) { s.WarehouseID = "w9" }, domain.ErrNotFound},
		{"producto inexistente", func(s *entity.Sale) { s.Items[0].ProductID = "p9" }, domain.ErrNotFound},
		{"total no cuadra", func(s *entity.Sale) { s.Total = decimal.NewFromInt(999) }, domain.ErrTotalMismatch},
		{"sin partidas", func(s *entity.Sale) { s.Items = nil; s.Total = decimal.Zero }, domain.ErrInvalidInput},
		{"cantidad cero", func(s *entity.Sale) { s.Items[0].Quantity = 0; s.Total = decimal.Zero }, domain.ErrInvalidInput},
		{"forma de pago inválida", func(s *entity.Sale) { s.PaymentMethod = "Tarjeta" }, domain.ErrInvalidInput},
		{"id vacío", func(s *entity.Sale) { s.ID = "" }, domain.ErrInvalidInput},
		{"stock insuficiente", func(s *entity.Sale) {
			s.Items[0].Quantity = 1001
			s.Total = entity.ItemsTotal(s.Items)
		}, domain.ErrInsufficientStock},
		{"cantidad sobre el tope", func(s *entity.Sale) {
			s.Items[0].Quantity = entity.MaxQuantity + 1
			s.Items[0].Price = decimal.Zero
			s.Total = decimal.Zero
		}, domain.ErrInvalidInput},
		{"partidas cuya suma desborda int64", func(s *entity.Sale) {
			s.Items = []entity.SaleItem{
				{ProductID: "p1", Quantity: math.MaxInt64, Price: decimal.Zero},
				{ProductID: "p1", Quantity: math.MaxInt64, Price: decimal.Zero},
			}
			s.Total = decimal.Zero
		}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := newSnapshot()
			sale := consignmentSale()
			sale.Items = append([]entity.SaleItem(nil), sale.Items...)
			tt.mutate(&sale)
			before := mustJSON(t, snap)

			next, err := state.RecordSale(snap, sale, entity.RoleOperator)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, mustJSON(t, next), "un rechazo no debe mutar nada")
		})
	}
}

func TestRecordSale_IDDuplicado(t *testing.T) {
	snap, err := state.RecordSale(newSnapshot(), consignmentSale(), entity.RoleOperator)
	require.NoError(t, err)

	_, err = state.RecordSale(snap, consignmentSale(), entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRecordSale_StockAgregadoPorProducto(t *testing.T) {
	sale := consignmentSale()
	sale.Items = []entity.SaleItem{
		{ProductID: "p1", Quantity: 600, Price: decimal.NewFromInt(1)},
		{ProductID: "p1", Quantity: 600, Price: decimal.NewFromInt(1)},
	}
	sale.Total = decimal.NewFromInt(1200)

	_, err := state.RecordSale(newSnapshot(), sale, entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "600+600 excede 1000 aunque cada partida cabe")
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustCustomerBalance
// ──────────────────────────────────────────────────────────────────────────────

func TestBalance_ConsignacionYAbono(t *testing.T) {
	snap, err := state.RecordSale(newSnapshot(), consignmentSale(), entity.RoleOperator)
	require.NoError(t, err)

	snap, err = state.AdjustCustomerBalance(snap, "c1", decimal.NewFromInt(400), entity.RoleOperator)
	require.NoError(t, err)
	assert.True(t, balance(t, snap, "c1").Equal(decimal.NewFromInt(600)), "0 + 1000 - 400 = 600")
}

func TestBalance_PuedeQuedarNegativo(t *testing.T) {
	next, err := state.AdjustCustomerBalance(newSnapshot(), "c2", decimal.NewFromFloat(250.5), entity.RolePromoter)
	require.NoError(t, err)
	assert.True(t, balance(t, next, "c2").Equal(decimal.NewFromFloat(-250.5)))
}

func TestBalance_Rechazos(t *testing.T) {
	snap := newSnapshot()

	_, err := state.AdjustCustomerBalance(snap, "c99", decimal.NewFromInt(10), entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = state.AdjustCustomerBalance(snap, "c1", decimal.Zero, entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = state.AdjustCustomerBalance(snap, "c1", decimal.NewFromInt(-5), entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func pendingOrder() entity.Order {
	items := []entity.SaleItem{{ProductID: "p2", Quantity: 2, Price: decimal.NewFromInt(32200)}}
	return entity.Order{
		ID:         "ORD-1",
		Date:       testDate,
		CustomerID: "c2",
		Items:      items,
		Total:      entity.ItemsTotal(items),
		PromoterID: "promo1",
	}
}

func TestCreateOrder_NoTocaInventarioNiSaldos(t *testing.T) {
	snap := newSnapshot()

	next, err := state.CreateOrder(snap, pendingOrder(), entity.RolePromoter)
	require.NoError(t, err)

	require.Len(t, next.Orders, 1)
	assert.Equal(t, entity.OrderStatusPending, next.Orders[0].Status, "estado vacío se vuelve Pendiente")
	assert.Equal(t, snap.Inventory, next.Inventory)
	assert.Equal(t, snap.Customers, next.Customers)
}

func TestCreateOrder_DebeNacerPendiente(t *testing.T) {
	order := pendingOrder()
	order.Status = entity.OrderStatusCompleted

	_, err := state.CreateOrder(newSnapshot(), order, entity.RolePromoter)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetOrderStatus_TerminalidadDePedidos(t *testing.T) {
	for _, terminal := range []entity.OrderStatus{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		t.Run(string(terminal), func(t *testing.T) {
			snap, err := state.CreateOrder(newSnapshot(), pendingOrder(), entity.RolePromoter)
			require.NoError(t, err)

			snap, err = state.SetOrderStatus(snap, "ORD-1", terminal, entity.RoleOperator)
			require.NoError(t, err)
			assert.Equal(t, terminal, snap.Orders[0].Status)

			for _, again := range []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
				next, err := state.SetOrderStatus(snap, "ORD-1", again, entity.RoleMaster)
				assert.ErrorIs(t, err, domain.ErrInvalidStateTransition, "%s -> %s", terminal, again)
				assert.Equal(t, terminal, next.Orders[0].Status)
			}
		})
	}
}

func TestSetOrderStatus_CompletarNoGeneraVenta(t *testing.T) {
	snap, err := state.CreateOrder(newSnapshot(), pendingOrder(), entity.RolePromoter)
	require.NoError(t, err)

	next, err := state.SetOrderStatus(snap, "ORD-1", entity.OrderStatusCompleted, entity.RoleOperator)
	require.NoError(t, err)
	assert.Empty(t, next.Sales)
	assert.Equal(t, snap.Inventory, next.Inventory)
}

func TestSetOrderStatus_Rechazos(t *testing.T) {
	snap, err := state.CreateOrder(newSnapshot(), pendingOrder(), entity.RolePromoter)
	require.NoError(t, err)

	_, err = state.SetOrderStatus(snap, "ORD-404", entity.OrderStatusCompleted, entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = state.SetOrderStatus(snap, "ORD-1", entity.OrderStatus("Enviado"), entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = state.SetOrderStatus(snap, "ORD-1", entity.OrderStatusPending, entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traspasos
// ──────────────────────────────────────────────────────────────────────────────

func newTransfer() entity.Transfer {
	return entity.Transfer{
		ID:                     "TRF-1",
		Date:                   testDate,
		OriginWarehouseID:      "w1",
		DestinationWarehouseID: "w2",
		ProductID:              "p1",
		Quantity:               50,
	}
}

func TestTransfer_ConservacionEnTransito(t *testing.T) {
	snap := newSnapshot()

	created, err := state.CreateTransfer(snap, newTransfer(), entity.RoleOperator)
	require.NoError(t, err)
	assert.Equal(t, int64(950), qty(t, created, "p1", "w1"))
	assert.Equal(t, int64(1000), qty(t, created, "p1", "w2"), "destino sin cambio mientras está en camino")
	require.Len(t, created.Transfers, 1)
	assert.Equal(t, entity.TransferStatusEnRoute, created.Transfers[0].Status)

	changed := 0
	for i := range snap.Inventory {
		if snap.Inventory[i] != created.Inventory[i] {
			changed++
		}
	}
	assert.Equal(t, 1, changed, "solo cambia el registro del origen")

	received, err := state.ReceiveTransfer(created, "TRF-1", entity.RoleOperator)
	require.NoError(t, err)
	assert.Equal(t, int64(1050), qty(t, received, "p1", "w2"))
	assert.Equal(t, int64(950), qty(t, received, "p1", "w1"))
	assert.Equal(t, entity.TransferStatusReceived, received.Transfers[0].Status)

	again, err := state.ReceiveTransfer(received, "TRF-1", entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, mustJSON(t, received), mustJSON(t, again), "segunda recepción sin efecto")
}

func TestCreateTransfer_Rechazos(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Transfer)
		want   error
	}{
		{"mismo origen y destino", func(tr *entity.Transfer) { tr.DestinationWarehouseID = "w1" }, domain.ErrInvalidTransferRoute},
		{"cantidad cero", func(tr *entity.Transfer) { tr.Quantity = 0 }, domain.ErrInvalidInput},
		{"producto inexistente", func(tr *entity.Transfer) { tr.ProductID = "p9" }, domain.ErrNotFound},
		{"destino inexistente", func(tr *entity.Transfer) { tr.DestinationWarehouseID = "w9" }, domain.ErrNotFound},
		{"ya recibido", func(tr *entity.Transfer) { tr.Status = entity.TransferStatusReceived }, domain.ErrInvalidInput},
		{"stock insuficiente", func(tr *entity.Transfer) { tr.Quantity = 1001 }, domain.ErrInsufficientStock},
		{"cantidad sobre el tope", func(tr *entity.Transfer) { tr.Quantity = entity.MaxQuantity + 1 }, domain.ErrInvalidInput},
		{"cantidad máxima de int64", func(tr *entity.Transfer) { tr.Quantity = math.MaxInt64 }, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := newSnapshot()
			tr := newTransfer()
			tt.mutate(&tr)
			before := mustJSON(t, snap)

			next, err := state.CreateTransfer(snap, tr, entity.RoleMaster)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, mustJSON(t, next))
		})
	}
}

func TestCreateTransfer_ReportaTodosLosErrores(t *testing.T) {
	snap := newSnapshot()
	idx := snap.InventoryIndex("p1", "w2")
	snap.Inventory = append(snap.Inventory[:idx:idx], snap.Inventory[idx+1:]...)
	tr := newTransfer()
	tr.Quantity = 0

	next, err := state.CreateTransfer(snap, tr, entity.RoleOperator)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el par de destino faltante también se reporta")
	assert.Equal(t, "NOT_FOUND", domain.Code(err))
	assert.Equal(t, mustJSON(t, snap), mustJSON(t, next))
}

func TestReceiveTransfer_DestinoDesbordado(t *testing.T) {
	snap := newSnapshot()
	snap.Inventory[snap.InventoryIndex("p1", "w2")].Quantity = math.MaxInt64 - 10
	tr := newTransfer()
	tr.Status = entity.TransferStatusEnRoute
	snap.Transfers = []entity.Transfer{tr}
	before := mustJSON(t, snap)

	next, err := state.ReceiveTransfer(snap, tr.ID, entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, before, mustJSON(t, next))
	assert.Equal(t, entity.TransferStatusEnRoute, next.Transfers[0].Status)
}

func TestReceiveTransfer_Inexistente(t *testing.T) {
	_, err := state.ReceiveTransfer(newSnapshot(), "TRF-404", entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste manual de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustInventory_SoloMaster(t *testing.T) {
	snap := newSnapshot()

	next, err := state.AdjustInventory(snap, "p2", "w1", -200, entity.RoleMaster)
	require.NoError(t, err)
	assert.Equal(t, int64(800), qty(t, next, "p2", "w1"))

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleOperator, entity.RolePromoter} {
		denied, err := state.AdjustInventory(snap, "p2", "w1", 5, role)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, "rol %s", role)
		assert.Equal(t, mustJSON(t, snap), mustJSON(t, denied))
	}
}

func TestAdjustInventory_Rechazos(t *testing.T) {
	snap := newSnapshot()

	_, err := state.AdjustInventory(snap, "p9", "w1", 5, entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = state.AdjustInventory(snap, "p1", "w1", 0, entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = state.AdjustInventory(snap, "p1", "w1", -1001, entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	for _, delta := range []int64{entity.MaxQuantity + 1, -entity.MaxQuantity - 1, math.MaxInt64, math.MinInt64} {
		next, err := state.AdjustInventory(snap, "p1", "w1", delta, entity.RoleMaster)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta %d", delta)
		assert.Equal(t, int64(1000), qty(t, next, "p1", "w1"))
	}
}

func TestAdjustInventory_SinDesborde(t *testing.T) {
	snap := newSnapshot()
	snap.Inventory[snap.InventoryIndex("p1", "w1")].Quantity = math.MaxInt64 - 1

	next, err := state.AdjustInventory(snap, "p1", "w1", 5, entity.RoleMaster)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(math.MaxInt64-1), qty(t, next, "p1", "w1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos: ADMIN (auditor) nunca muta el snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_TodasLasOperacionesSonNoOp(t *testing.T) {
	base, err := state.CreateOrder(newSnapshot(), pendingOrder(), entity.RoleMaster)
	require.NoError(t, err)
	base, err = state.CreateTransfer(base, newTransfer(), entity.RoleMaster)
	require.NoError(t, err)
	before := mustJSON(t, base)

	ops := map[string]func(entity.AppData) (entity.AppData, error){
		"recordSale": func(s entity.AppData) (entity.AppData, error) {
			return state.RecordSale(s, consignmentSale(), entity.RoleAdmin)
		},
		"adjustCustomerBalance": func(s entity.AppData) (entity.AppData, error) {
			return state.AdjustCustomerBalance(s, "c1", decimal.NewFromInt(10), entity.RoleAdmin)
		},
		"createOrder": func(s entity.AppData) (entity.AppData, error) {
			o := pendingOrder()
			o.ID = "ORD-2"
			return state.CreateOrder(s, o, entity.RoleAdmin)
		},
		"setOrderStatus": func(s entity.AppData) (entity.AppData, error) {
			return state.SetOrderStatus(s, "ORD-1", entity.OrderStatusCancelled, entity.RoleAdmin)
		},
		"createTransfer": func(s entity.AppData) (entity.AppData, error) {
			tr := newTransfer()
			tr.ID = "TRF-2"
			return state.CreateTransfer(s, tr, entity.RoleAdmin)
		},
		"receiveTransfer": func(s entity.AppData) (entity.AppData, error) {
			return state.ReceiveTransfer(s, "TRF-1", entity.RoleAdmin)
		},
		"adjustInventory": func(s entity.AppData) (entity.AppData, error) {
			return state.AdjustInventory(s, "p1", "w1", 1, entity.RoleAdmin)
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			next, err := op(base)
			assert.ErrorIs(t, err, domain.ErrPermissionDenied)
			assert.Equal(t, "PERMISSION_DENIED", domain.Code(err))
			assert.Equal(t, before, mustJSON(t, next))
		})
	}
}

func TestPermiso_SeRevisaAntesQueLaCarga(t *testing.T) {
	// Venta inválida y rol sin permiso: gana el permiso.
	sale := consignmentSale()
	sale.CustomerID = "c99"
	_, err := state.RecordSale(newSnapshot(), sale, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
