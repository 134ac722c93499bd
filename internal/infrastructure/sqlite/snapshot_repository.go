// Package sqlite persiste el snapshot en un archivo SQLite local vía gorm (análogo al almacenamiento del navegador).
package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// snapshotRow una fila por ranura de almacenamiento.
type snapshotRow struct {
	Key       string `gorm:"primaryKey;column:storage_key"`
	Data      string `gorm:"column:data;not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "app_snapshots" }

// Open abre (o crea) la base en path y migra la tabla de snapshots.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrar sqlite: %w", err)
	}
	return db, nil
}

// SnapshotRepo implementación del puerto SnapshotRepository sobre SQLite.
type SnapshotRepo struct {
	db  *gorm.DB
	key string
}

// NewSnapshotRepository construye el adaptador para la ranura key.
func NewSnapshotRepository(db *gorm.DB, key string) *SnapshotRepo {
	return &SnapshotRepo{db: db, key: key}
}

// Load lee la ranura; (nil, nil) si no existe.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.AppData, error) {
	var row snapshotRow
	err := r.db.WithContext(ctx).Where("storage_key = ?", r.key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	var snap entity.AppData
	if err := json.Unmarshal([]byte(row.Data), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save hace upsert del snapshot completo.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.AppData) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	row := snapshotRow{Key: r.key, Data: string(blob), UpdatedAt: time.Now().UTC()}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
