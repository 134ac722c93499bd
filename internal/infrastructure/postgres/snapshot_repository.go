package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// Querier lo que el repositorio usa de *pgxpool.Pool (o de una pgx.Tx).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS app_snapshots (
		storage_key TEXT PRIMARY KEY,
		data        JSONB NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// SnapshotRepo implementación del puerto SnapshotRepository sobre PostgreSQL (una fila jsonb por ranura).
type SnapshotRepo struct {
	db  Querier
	key string
}

// NewSnapshotRepository construye el adaptador para la ranura key.
func NewSnapshotRepository(db Querier, key string) *SnapshotRepo {
	return &SnapshotRepo{db: db, key: key}
}

// EnsureSchema crea la tabla si no existe.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create app_snapshots: %w", err)
	}
	return nil
}

// Load devuelve (nil, nil) si la ranura no existe.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.AppData, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM app_snapshots WHERE storage_key = $1`, r.key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	var snap entity.AppData
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save hace upsert de la fila de la ranura.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.AppData) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	query := `
		INSERT INTO app_snapshots (storage_key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (storage_key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.Exec(ctx, query, r.key, blob); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
