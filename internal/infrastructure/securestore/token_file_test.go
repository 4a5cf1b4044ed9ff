package securestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/infrastructure/securestore"
)

func TestTokenFile_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "token.bin")
	s, err := securestore.NewTokenFile(path, "clave-de-prueba")
	require.NoError(t, err)

	_, found, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "tok-secreto"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok-secreto", "el token no se guarda en claro")

	tok, found, err := s.Get(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok-secreto", tok)

	require.NoError(t, s.Delete(ctx))
	require.NoError(t, s.Delete(ctx), "borrar dos veces no falla")
	_, found, _ = s.Get(ctx)
	assert.False(t, found)
}

func TestTokenFile_SecretoDistintoEsIlegible(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token.bin")
	a, _ := securestore.NewTokenFile(path, "uno")
	b, _ := securestore.NewTokenFile(path, "otro")
	require.NoError(t, a.Set(ctx, "tok"))

	_, _, err := b.Get(ctx)
	assert.ErrorIs(t, err, securestore.ErrCorrupt)
}

func TestNewTokenFile_SinSecreto(t *testing.T) {
	_, err := securestore.NewTokenFile("x", "")
	assert.Error(t, err)
}
