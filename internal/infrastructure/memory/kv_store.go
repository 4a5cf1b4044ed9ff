// Package memory adaptadores en memoria (STORAGE_DRIVER=memory y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// KVStore implementa repository.KeyValueStore sobre un map.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ repository.KeyValueStore = (*KVStore)(nil)

// NewKVStore crea un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *KVStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.data)
	return nil
}

// Len cantidad de claves (tests).
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
