// Package memory implementa el puerto de snapshot en memoria (tests y ejecuciones efímeras).
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo guarda el snapshot serializado, igual que los demás drivers, para no compartir memoria con el llamador.
type SnapshotRepo struct {
	mu    sync.Mutex
	blob  []byte
	saves int
	err   error
}

// NewSnapshotRepository construye la ranura vacía.
func NewSnapshotRepository() *SnapshotRepo {
	return &SnapshotRepo{}
}

// Load devuelve (nil, nil) si nunca se guardó nada.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.AppData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blob == nil {
		return nil, nil
	}
	var snap entity.AppData
	if err := json.Unmarshal(r.blob, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save reemplaza el contenido de la ranura.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.AppData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	r.blob = blob
	r.saves++
	return nil
}

// Saves número de guardados exitosos.
func (r *SnapshotRepo) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// FailWith hace que los siguientes Save fallen con err (nil restablece).
func (r *SnapshotRepo) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Raw devuelve una copia del blob persistido.
func (r *SnapshotRepo) Raw() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.blob...)
}
