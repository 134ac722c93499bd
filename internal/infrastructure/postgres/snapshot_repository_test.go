package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// fakeQuerier guarda la última escritura y responde lecturas desde ella.
type fakeQuerier struct {
	rows     map[string][]byte
	lastSQL  string
	execErr  error
	queryErr error
}

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.data
	return nil
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL = sql
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	if len(args) == 2 {
		f.rows[args[0].(string)] = args[1].([]byte)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.queryErr != nil {
		return fakeRow{err: f.queryErr}
	}
	data, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{data: data}
}

func newFake() *fakeQuerier { return &fakeQuerier{rows: make(map[string][]byte)} }

func TestLoad_SinFila(t *testing.T) {
	snap, err := NewSnapshotRepository(newFake(), "k").Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSave_UpsertJSONB(t *testing.T) {
	ctx := context.Background()
	db := newFake()
	repo := NewSnapshotRepository(db, "feria")

	in := &entity.AppData{Warehouses: []entity.Warehouse{{ID: "w1", Name: "CEDIS", Location: "Centro"}}}
	require.NoError(t, repo.Save(ctx, in))
	assert.Contains(t, db.lastSQL, "ON CONFLICT (storage_key)")

	var stored map[string]any
	require.NoError(t, json.Unmarshal(db.rows["feria"], &stored))
	assert.Contains(t, stored, "warehouses")

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in.Warehouses, out.Warehouses)
}

func TestErroresDeBase(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("conexión perdida")

	db := newFake()
	db.queryErr = boom
	_, err := NewSnapshotRepository(db, "k").Load(ctx)
	assert.ErrorIs(t, err, boom)

	db = newFake()
	db.execErr = boom
	assert.ErrorIs(t, NewSnapshotRepository(db, "k").Save(ctx, &entity.AppData{}), boom)
	assert.ErrorIs(t, NewSnapshotRepository(db, "k").EnsureSchema(ctx), boom)
}
