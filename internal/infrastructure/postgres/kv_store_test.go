package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/infrastructure/postgres"
)

// fakeDB simula app_state en memoria interpretando las tres sentencias del adaptador.
type fakeDB struct {
	rows  map[string]string
	execs []string
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, sql)
	switch {
	case strings.Contains(sql, "INSERT INTO app_state"):
		db.rows[args[0].(string)+"/"+args[1].(string)] = args[2].(string)
	case strings.Contains(sql, "DELETE FROM app_state"):
		for k := range db.rows {
			if strings.HasPrefix(k, args[0].(string)+"/") {
				delete(db.rows, k)
			}
		}
	}
	return pgconn.NewCommandTag("OK"), nil
}

func (db *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := db.rows[args[0].(string)+"/"+args[1].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func TestKVStore_GetSetClear(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{rows: map[string]string{"otro/products": "[]"}}
	s := postgres.NewKVStore(db, "")

	require.NoError(t, s.EnsureSchema(ctx))
	_, found, err := s.Get(ctx, "products")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "products", `[{"id":1}]`))
	v, found, err := s.Get(ctx, "products")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, s.Clear(ctx))
	_, found, _ = s.Get(ctx, "products")
	assert.False(t, found)
	assert.Contains(t, db.rows, "otro/products", "Clear solo borra su namespace")
	assert.Contains(t, db.execs[0], "CREATE TABLE IF NOT EXISTS app_state")
}

func TestKVStore_ErrorDeLectura(t *testing.T) {
	db := &errDB{}
	_, _, err := postgres.NewKVStore(db, "x").Get(context.Background(), "auth")
	assert.Error(t, err)
}

type errDB struct{}

func (errDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("conexión cerrada")
}

func (errDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return fakeRow{err: errors.New("conexión cerrada")}
}
