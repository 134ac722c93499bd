package repository

import (
	"context"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia del snapshot completo (una sola ranura clave-valor).
// Load devuelve (nil, nil) cuando la ranura está vacía.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.AppData, error)
	Save(ctx context.Context, snap *entity.AppData) error
}
