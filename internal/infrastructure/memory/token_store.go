package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// TokenStore slot de token en memoria.
type TokenStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

var _ repository.TokenStore = (*TokenStore)(nil)

// NewTokenStore crea un slot vacío.
func NewTokenStore() *TokenStore { return &TokenStore{} }

func (s *TokenStore) Get(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set, nil
}

func (s *TokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = token, true
	return nil
}

func (s *TokenStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = "", false
	return nil
}
