package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	domainanalytics "github.com/jhoicas/feria-pos/internal/domain/analytics"
)

// DashboardUseCase arma el resumen del tablero principal.
type DashboardUseCase struct {
	reader SnapshotReader
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso; now nil usa el reloj del sistema.
func NewDashboardUseCase(reader SnapshotReader, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{reader: reader, now: now}
}

// GetSummary KPIs, tendencia de cinco días, ingreso por zona, unidades por categoría y top de clientes.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	snap, err := read(ctx, uc.reader)
	if err != nil {
		return nil, err
	}

	revenue := domainanalytics.TotalRevenue(snap)
	out := &dto.DashboardResponse{
		TotalRevenue:   revenue,
		NetProfit:      domainanalytics.NetProfit(revenue),
		TotalDebt:      domainanalytics.TotalDebt(snap),
		CriticalStock:  domainanalytics.CountBelow(snap, domainanalytics.CriticalStockThreshold),
		SalesGoal:      domainanalytics.SalesGoal,
		GoalPercentage: domainanalytics.GoalPercentage(revenue, domainanalytics.SalesGoal).Round(1),
		RevenueByZone:  toBuckets(domainanalytics.RevenueByZone(snap)),
		UnitsByCat:     toBuckets(domainanalytics.UnitsByCategory(snap)),
		TopCustomers:   toBuckets(domainanalytics.TopCustomers(snap, domainanalytics.TopCustomersLimit)),
	}
	for _, d := range domainanalytics.DayTrend(snap, uc.now(), domainanalytics.TrendDays) {
		out.Trend = append(out.Trend, dto.DayTotalDTO{Date: d.Day.Format(time.DateOnly), Total: d.Total})
	}
	return out, nil
}

func toBuckets(in []domainanalytics.Bucket) []dto.BucketDTO {
	out := make([]dto.BucketDTO, 0, len(in))
	for _, b := range in {
		out = append(out, dto.BucketDTO{Name: b.Name, Value: b.Value})
	}
	return out
}
