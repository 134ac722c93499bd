// Package analytics calcula las vistas derivadas del snapshot (solo lectura y deterministas).
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

const (
	// CriticalStockThreshold existencia por debajo de la cual un registro cuenta como crítico en el tablero.
	CriticalStockThreshold = 500
	// LowStockThreshold existencia por debajo de la cual la vista de inventario marca la fila.
	LowStockThreshold = 50
	// TopCustomersLimit número de clientes en el ranking del tablero.
	TopCustomersLimit = 5
	// TrendDays días en la tendencia de ventas.
	TrendDays = 5
)

var (
	// SalesGoal meta de ventas de la temporada.
	SalesGoal = decimal.NewFromInt(12_000_000)
	// NetProfitRate margen neto estimado sobre ingresos.
	NetProfitRate = decimal.NewFromFloat(0.13)
)

// Bucket par nombre/valor de una agrupación.
type Bucket struct {
	Name  string
	Value decimal.Decimal
}

// DayTotal ventas de un día calendario.
type DayTotal struct {
	Day   time.Time
	Total decimal.Decimal
}

// TotalRevenue suma el total de todas las ventas.
func TotalRevenue(d entity.AppData) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range d.Sales {
		sum = sum.Add(s.Total)
	}
	return sum
}

// NetProfit estima la utilidad neta a partir del ingreso.
func NetProfit(revenue decimal.Decimal) decimal.Decimal {
	return revenue.Mul(NetProfitRate)
}

// TotalDebt suma el saldo de todos los clientes.
func TotalDebt(d entity.AppData) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range d.Customers {
		sum = sum.Add(c.Balance)
	}
	return sum
}

// CountBelow cuenta los registros de inventario con existencia menor al umbral.
func CountBelow(d entity.AppData, threshold int64) int {
	n := 0
	for _, it := range d.Inventory {
		if it.Quantity < threshold {
			n++
		}
	}
	return n
}

// GoalPercentage porcentaje de la meta alcanzado, tope 100.
func GoalPercentage(revenue, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}
	pct := revenue.Div(goal).Mul(decimal.NewFromInt(100))
	return decimal.Min(pct, decimal.NewFromInt(100))
}

// DayTrend ventas por día de los últimos days días terminando en now (el más antiguo primero).
// Los días se comparan en UTC, igual que las fechas ISO persistidas.
func DayTrend(d entity.AppData, now time.Time, days int) []DayTotal {
	today := truncateDay(now)
	out := make([]DayTotal, days)
	index := make(map[time.Time]int, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-(days-1))
		out[i] = DayTotal{Day: day, Total: decimal.Zero}
		index[day] = i
	}
	for _, s := range d.Sales {
		if i, ok := index[truncateDay(s.Date)]; ok {
			out[i].Total = out[i].Total.Add(s.Total)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// RevenueByZone ingreso por zona, en orden de primera aparición de la zona en el directorio.
// Las zonas sin ventas se omiten.
func RevenueByZone(d entity.AppData) []Bucket {
	zoneOf := make(map[string]string, len(d.Customers))
	var zones []string
	seen := make(map[string]bool)
	for _, c := range d.Customers {
		zoneOf[c.ID] = c.Zone
		if !seen[c.Zone] {
			seen[c.Zone] = true
			zones = append(zones, c.Zone)
		}
	}
	totals := make(map[string]decimal.Decimal, len(zones))
	for _, s := range d.Sales {
		if z, ok := zoneOf[s.CustomerID]; ok {
			totals[z] = totals[z].Add(s.Total)
		}
	}
	var out []Bucket
	for _, z := range zones {
		if v := totals[z]; v.IsPositive() {
			out = append(out, Bucket{Name: z, Value: v})
		}
	}
	return out
}

// UnitsByCategory unidades vendidas por categoría, de mayor a menor (empates en orden de categoría).
func UnitsByCategory(d entity.AppData) []Bucket {
	catOf := make(map[string]entity.Category, len(d.Products))
	for _, p := range d.Products {
		catOf[p.ID] = p.Category
	}
	units := make(map[entity.Category]int64)
	for _, s := range d.Sales {
		for _, it := range s.Items {
			if c, ok := catOf[it.ProductID]; ok {
				units[c] += it.Quantity
			}
		}
	}
	out := make([]Bucket, 0, len(entity.Categories()))
	for _, c := range entity.Categories() {
		out = append(out, Bucket{Name: string(c), Value: decimal.NewFromInt(units[c])})
	}
	sortDesc(out)
	return out
}

// TopCustomers los n clientes con mayor ingreso acumulado (empates en orden del directorio).
func TopCustomers(d entity.AppData, n int) []Bucket {
	totals := make(map[string]decimal.Decimal, len(d.Customers))
	for _, s := range d.Sales {
		totals[s.CustomerID] = totals[s.CustomerID].Add(s.Total)
	}
	out := make([]Bucket, 0, len(d.Customers))
	for _, c := range d.Customers {
		out = append(out, Bucket{Name: c.Name, Value: totals[c.ID]})
	}
	sortDesc(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func sortDesc(b []Bucket) {
	sort.SliceStable(b, func(i, j int) bool { return b[i].Value.GreaterThan(b[j].Value) })
}
