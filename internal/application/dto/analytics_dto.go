package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue" swaggertype:"string"`
	NetProfit      decimal.Decimal `json:"netProfit" swaggertype:"string"` // estimado: 13% del ingreso
	TotalDebt      decimal.Decimal `json:"totalDebt" swaggertype:"string"`
	CriticalStock  int             `json:"criticalStock"`
	SalesGoal      decimal.Decimal `json:"salesGoal" swaggertype:"string"`
	GoalPercentage decimal.Decimal `json:"goalPercentage" swaggertype:"string"`
	Trend          []DayTotalDTO   `json:"trend"`
	RevenueByZone  []BucketDTO     `json:"revenueByZone"`
	UnitsByCat     []BucketDTO     `json:"unitsByCategory"`
	TopCustomers   []BucketDTO     `json:"topCustomers"`
}

// DayTotalDTO ventas de un día (YYYY-MM-DD).
type DayTotalDTO struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
}

// BucketDTO par nombre/valor para gráficas.
type BucketDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value" swaggertype:"string"`
}

// AuditEntryDTO fila de la bitácora.
type AuditEntryDTO struct {
	ID     string           `json:"id"`
	Type   string           `json:"type"`
	Date   time.Time        `json:"date"`
	Status string           `json:"status"`
	Total  *decimal.Decimal `json:"total,omitempty" swaggertype:"string"`
}

// InventoryRowDTO fila de la vista de inventario.
type InventoryRowDTO struct {
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	Category      string `json:"category"`
	WarehouseID   string `json:"warehouseId"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int64  `json:"quantity"`
	LowStock      bool   `json:"lowStock"`
}

// InventoryQuery filtros de GET /api/inventory.
type InventoryQuery struct {
	WarehouseID string `query:"warehouseId"`
	Category    string `query:"category"`
	LowOnly     bool   `query:"lowOnly"`
}
