// Package storage selecciona el almacén clave/valor según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/redis"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/securestore"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/sqlite"
	"github.com/jhoicas/Inventario-stock/pkg/config"
)

// Open devuelve el almacén configurado y la función que libera sus recursos.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.KeyValueStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacén en memoria: el estado se pierde al reiniciar")
		return memory.NewKVStore(), func() {}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		kv := postgres.NewKVStore(pool, cfg.Storage.Namespace)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return kv, pool.Close, nil

	case config.StorageRedis:
		client, err := redis.NewClient(redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		return redis.NewKVStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil

	default:
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, nil, fmt.Errorf("crear directorio sqlite: %w", err)
			}
		}
		kv, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	}
}

// OpenTokens devuelve el slot seguro del token: archivo cifrado si hay TOKEN_SECRET,
// memoria en caso contrario (la sesión no sobrevive a un reinicio).
func OpenTokens(cfg config.TokenConfig, log zerolog.Logger) (repository.TokenStore, error) {
	if cfg.Secret == "" || cfg.Path == "" {
		log.Warn().Msg("TOKEN_SECRET vacío: token solo en memoria")
		return memory.NewTokenStore(), nil
	}
	return securestore.NewTokenFile(cfg.Path, cfg.Secret)
}
