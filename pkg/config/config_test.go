package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "REDIS")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_RANDOM", "42")
	t.Setenv("STORAGE_KEY", "feria_demo")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, uint64(42), cfg.App.SeedRandom)
	assert.Equal(t, "feria_demo", cfg.Storage.Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memoria", Config{Storage: StorageConfig{Driver: StorageMemory, Key: "k"}}, false},
		{"driver desconocido", Config{Storage: StorageConfig{Driver: "mongo", Key: "k"}}, true},
		{"redis sin dirección", Config{Storage: StorageConfig{Driver: StorageRedis, Key: "k"}}, true},
		{"postgres con url", Config{Storage: StorageConfig{Driver: StoragePostgres, Key: "k"}, DB: DBConfig{DatabaseURL: "postgres://x"}}, false},
		{"llave vacía", Config{Storage: StorageConfig{Driver: StorageSQLite, Key: " "}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN_EscapaContrasena(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss", DBName: "feria", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss@db:5432/feria?sslmode=disable", c.ConnectionString())
}
