package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// Verificar en tiempo de compilación que KVStore implementa repository.KeyValueStore.
var _ repository.KeyValueStore = (*KVStore)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_state (
	namespace  TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (namespace, key)
)`

// DB subconjunto de *pgxpool.Pool usado por el adaptador (también lo cumple pgx.Tx).
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KVStore almacén clave/valor sobre la tabla app_state; namespace aísla dispositivos.
type KVStore struct {
	db        DB
	namespace string
}

// NewKVStore construye el adaptador.
func NewKVStore(db DB, namespace string) *KVStore {
	if namespace == "" {
		namespace = "default"
	}
	return &KVStore{db: db, namespace: namespace}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla app_state: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx,
		`SELECT value FROM app_state WHERE namespace = $1 AND key = $2`,
		s.namespace, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("leer %s: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO app_state (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		s.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM app_state WHERE namespace = $1`, s.namespace); err != nil {
		return fmt.Errorf("limpiar app_state: %w", err)
	}
	return nil
}
