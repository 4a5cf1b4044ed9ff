package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/securestore"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/storage"
	"github.com/jhoicas/Inventario-stock/pkg/config"
)

func TestOpen_SQLiteCreaDirectorio(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver:     config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "data", "inv.db"),
	}}

	kv, closeFn, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, kv.Set(context.Background(), "products", "[]"))
	v, found, err := kv.Get(context.Background(), "products")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)
}

func TestOpen_Memoria(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}

	kv, closeFn, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	closeFn()

	assert.IsType(t, &memory.KVStore{}, kv)
}

func TestOpenTokens(t *testing.T) {
	tokens, err := storage.OpenTokens(config.TokenConfig{Path: "x"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memory.TokenStore{}, tokens)

	tokens, err = storage.OpenTokens(config.TokenConfig{Path: filepath.Join(t.TempDir(), "t.bin"), Secret: "s"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &securestore.TokenFile{}, tokens)
}
