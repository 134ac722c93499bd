package analytics

import (
	"context"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	domainanalytics "github.com/jhoicas/feria-pos/internal/domain/analytics"
)

// AuditUseCase bitácora de movimientos recalculada en cada consulta.
type AuditUseCase struct {
	reader SnapshotReader
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(reader SnapshotReader) *AuditUseCase {
	return &AuditUseCase{reader: reader}
}

// List devuelve los movimientos del más reciente al más antiguo; eventType filtra (VENTA, TRASPASO, PEDIDO).
func (uc *AuditUseCase) List(ctx context.Context, eventType string) ([]dto.AuditEntryDTO, error) {
	snap, err := read(ctx, uc.reader)
	if err != nil {
		return nil, err
	}
	events := domainanalytics.AuditLog(snap)
	out := make([]dto.AuditEntryDTO, 0, len(events))
	for _, e := range events {
		if eventType != "" && string(e.Type) != eventType {
			continue
		}
		out = append(out, dto.AuditEntryDTO{ID: e.ID, Type: string(e.Type), Date: e.Date, Status: e.Status, Total: e.Total})
	}
	return out, nil
}
