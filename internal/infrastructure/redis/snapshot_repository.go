// Package redis guarda el snapshot como una cadena JSON bajo una sola llave.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/internal/domain/repository"
	"github.com/jhoicas/feria-pos/pkg/config"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
}

// SnapshotRepo implementación del puerto SnapshotRepository sobre Redis.
type SnapshotRepo struct {
	store cmdable
	key   string
}

// NewClient abre la conexión (REDIS_URL o REDIS_ADDR) y verifica con Ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	switch {
	case cfg.URL != "":
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	case cfg.Address != "":
		opts = &redis.Options{Addr: cfg.Address, Password: cfg.Password, DB: cfg.DB}
	default:
		return nil, errors.New("redis: se requiere REDIS_URL o REDIS_ADDR")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewSnapshotRepository construye el adaptador para la llave key.
func NewSnapshotRepository(store cmdable, key string) *SnapshotRepo {
	return &SnapshotRepo{store: store, key: key}
}

// Load devuelve (nil, nil) si la llave no existe.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.AppData, error) {
	raw, err := r.store.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	var snap entity.AppData
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save reemplaza el valor de la llave, sin expiración.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.AppData) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(blob), 0).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}
