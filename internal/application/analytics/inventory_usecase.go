package analytics

import (
	"context"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	domainanalytics "github.com/jhoicas/feria-pos/internal/domain/analytics"
)

// InventoryUseCase vista de existencias con nombres de producto y bodega.
type InventoryUseCase struct {
	reader SnapshotReader
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(reader SnapshotReader) *InventoryUseCase {
	return &InventoryUseCase{reader: reader}
}

// List filas en el orden del snapshot, con LowStock cuando la existencia es menor a 50.
func (uc *InventoryUseCase) List(ctx context.Context, q dto.InventoryQuery) ([]dto.InventoryRowDTO, error) {
	snap, err := read(ctx, uc.reader)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowDTO, 0, len(snap.Inventory))
	for _, it := range snap.Inventory {
		if q.WarehouseID != "" && it.WarehouseID != q.WarehouseID {
			continue
		}
		p, _ := snap.ProductByID(it.ProductID)
		if q.Category != "" && string(p.Category) != q.Category {
			continue
		}
		low := it.Quantity < domainanalytics.LowStockThreshold
		if q.LowOnly && !low {
			continue
		}
		w, _ := snap.WarehouseByID(it.WarehouseID)
		out = append(out, dto.InventoryRowDTO{
			ProductID:     it.ProductID,
			ProductName:   p.Name,
			Category:      string(p.Category),
			WarehouseID:   it.WarehouseID,
			WarehouseName: w.Name,
			Quantity:      it.Quantity,
			LowStock:      low,
		})
	}
	return out, nil
}
