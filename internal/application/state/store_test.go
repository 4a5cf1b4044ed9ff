package state_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/state"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
)

func TestSaveYLoad(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := state.NewStore(kv, zerolog.Nop())
	snap := entity.Snapshot{
		Products:  []entity.Product{{ID: 1, Name: "Os", Supplier: "X", CurrentStock: 2, AlertThreshold: 5}},
		Suppliers: []string{"X"},
		Settings:  entity.DefaultSettings(),
	}

	require.NoError(t, s.Save(ctx, state.AuthRecord{IsAuthenticated: true, UserEmail: "a@b.com"}, snap))
	assert.Equal(t, 4, kv.Len())

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded.Auth)
	assert.Equal(t, "a@b.com", loaded.Auth.UserEmail)
	require.NotNil(t, loaded.Products)
	assert.Equal(t, int64(1), (*loaded.Products)[0].ID)
	assert.Equal(t, []string{"X"}, *loaded.Suppliers)
	assert.Equal(t, entity.DefaultSettings(), *loaded.Settings)
}

func TestLoad_ClaveCorruptaSeOmite(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, repository.KeyProducts, "{no es json"))
	require.NoError(t, kv.Set(ctx, repository.KeySuppliers, `["A"]`))
	require.NoError(t, kv.Set(ctx, repository.KeySettings, `{"companyName":"Zoo"}`))

	loaded, err := state.NewStore(kv, zerolog.Nop()).Load(ctx)
	require.NoError(t, err)

	assert.Nil(t, loaded.Auth)
	assert.Nil(t, loaded.Products)
	assert.Equal(t, []string{"A"}, *loaded.Suppliers)
	assert.Equal(t, "Zoo", loaded.Settings.CompanyName)
	assert.True(t, loaded.Settings.EnableBarcodeScanner, "los ajustes parciales conservan los valores por defecto")
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := state.NewStore(kv, zerolog.Nop())
	require.NoError(t, s.Save(ctx, state.AuthRecord{}, entity.Snapshot{}))

	require.NoError(t, s.Clear(ctx))

	assert.Zero(t, kv.Len())
}
