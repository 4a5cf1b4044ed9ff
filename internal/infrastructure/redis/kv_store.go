// Package redis almacén clave/valor compartido: todo el estado vive en un hash por dispositivo.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// HashClient subconjunto de *goredis.Client usado por el adaptador.
type HashClient interface {
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *goredis.IntCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// Options conexión a Redis.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// KVStore implementa repository.KeyValueStore sobre un hash <prefix>:state.
type KVStore struct {
	client HashClient
	hash   string
}

// NewClient crea el cliente go-redis.
func NewClient(opts Options) (*goredis.Client, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, errors.New("redis: REDIS_ADDR es obligatorio")
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(opts.Password),
		DB:       opts.DB,
	}), nil
}

// NewKVStore construye el adaptador sobre un cliente existente.
func NewKVStore(client HashClient, prefix string) *KVStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "inventario"
	}
	return &KVStore{client: client, hash: prefix + ":state"}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.hash, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis: leer %s: %w", key, err)
	}
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.hash, key, value).Err(); err != nil {
		return fmt.Errorf("redis: guardar %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.hash).Err(); err != nil {
		return fmt.Errorf("redis: limpiar %s: %w", s.hash, err)
	}
	return nil
}
