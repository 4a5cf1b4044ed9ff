// Package sqlite almacén local por defecto: un archivo SQLite vía gorm (driver puro Go, sin cgo).
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// stateEntry fila de la tabla app_state.
type stateEntry struct {
	Key       string `gorm:"column:state_key;primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (stateEntry) TableName() string { return "app_state" }

// KVStore implementa repository.KeyValueStore sobre gorm.
type KVStore struct {
	db *gorm.DB
}

// Open abre (o crea) la base y migra la tabla.
func Open(dsn string) (*KVStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", dsn, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	// SQLite admite un solo escritor.
	sqlDB.SetMaxOpenConns(1)
	return New(db)
}

// New envuelve una conexión existente y migra la tabla.
func New(db *gorm.DB) (*KVStore, error) {
	if err := db.AutoMigrate(&stateEntry{}); err != nil {
		return nil, fmt.Errorf("migrar app_state: %w", err)
	}
	return &KVStore{db: db}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e stateEntry
	err := s.db.WithContext(ctx).Where("state_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("leer %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	e := stateEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&stateEntry{}).Error; err != nil {
		return fmt.Errorf("limpiar app_state: %w", err)
	}
	return nil
}

// Close libera la conexión.
func (s *KVStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
