// Package analytics contiene los casos de uso de solo lectura sobre el snapshot: tablero,
// bitácora, vista de inventario y padrón de clientes.
package analytics

import (
	"context"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// SnapshotReader fuente del snapshot vigente (implementada por state.StateUseCase).
type SnapshotReader interface {
	Snapshot() (entity.AppData, error)
}

// read toma el snapshot salvo que la petición ya se haya cancelado o vencido.
func read(ctx context.Context, r SnapshotReader) (entity.AppData, error) {
	if err := ctx.Err(); err != nil {
		return entity.AppData{}, err
	}
	return r.Snapshot()
}
