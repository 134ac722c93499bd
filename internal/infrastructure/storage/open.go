// Package storage elige el adaptador de persistencia del snapshot según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/feria-pos/internal/domain/repository"
	"github.com/jhoicas/feria-pos/internal/infrastructure/memory"
	"github.com/jhoicas/feria-pos/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/feria-pos/internal/infrastructure/redis"
	"github.com/jhoicas/feria-pos/internal/infrastructure/sqlite"
	"github.com/jhoicas/feria-pos/pkg/config"
	"github.com/jhoicas/feria-pos/pkg/logger"
)

// Open conecta el driver configurado y devuelve el repositorio con su función de cierre.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SnapshotRepository, func(), error) {
	key := cfg.Storage.Key
	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Storage.SQLitePath).Str("key", key).Msg("almacenamiento SQLite")
		return sqlite.NewSnapshotRepository(db, key), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewSnapshotRepository(pool, key)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("host", cfg.DB.Host).Str("key", key).Msg("almacenamiento PostgreSQL")
		return repo, pool.Close, nil

	case config.StorageRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("key", key).Msg("almacenamiento Redis")
		return infraredis.NewSnapshotRepository(client, key), func() { _ = client.Close() }, nil

	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return memory.NewSnapshotRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
}
