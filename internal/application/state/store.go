// Package state serializa el estado de la aplicación sobre el almacén clave/valor.
package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// AuthRecord contenido de la clave "auth". El token nunca se guarda aquí.
type AuthRecord struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserEmail       string `json:"userEmail"`
}

// Loaded estado leído; nil = clave ausente o ilegible.
type Loaded struct {
	Auth      *AuthRecord
	Products  *[]entity.Product
	Suppliers *[]string
	Settings  *entity.AppSettings
}

// Store lee y escribe el snapshot completo clave por clave.
type Store struct {
	kv  repository.KeyValueStore
	log zerolog.Logger
}

// NewStore construye el codec sobre kv.
func NewStore(kv repository.KeyValueStore, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Save persiste auth, products, suppliers y settings en ese orden.
// Sigue con las claves restantes si una falla y devuelve el primer error.
func (s *Store) Save(ctx context.Context, auth AuthRecord, snap entity.Snapshot) error {
	products := snap.Products
	if products == nil {
		products = []entity.Product{}
	}
	suppliers := snap.Suppliers
	if suppliers == nil {
		suppliers = []string{}
	}
	entries := []struct {
		key   string
		value any
	}{
		{repository.KeyAuth, auth},
		{repository.KeyProducts, products},
		{repository.KeySuppliers, suppliers},
		{repository.KeySettings, snap.Settings},
	}
	var errs []error
	for _, e := range entries {
		raw, err := json.Marshal(e.value)
		if err != nil {
			errs = append(errs, fmt.Errorf("serializar %s: %w", e.key, err))
			continue
		}
		if err := s.kv.Set(ctx, e.key, string(raw)); err != nil {
			errs = append(errs, fmt.Errorf("%w: guardar %s: %v", domain.ErrStorage, e.key, err))
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Load lee las cuatro claves. Un valor corrupto se registra y se omite; solo un fallo
// del almacén se devuelve como error.
func (s *Store) Load(ctx context.Context) (Loaded, error) {
	var out Loaded

	var auth AuthRecord
	if ok, err := s.read(ctx, repository.KeyAuth, &auth); err != nil {
		return out, err
	} else if ok {
		out.Auth = &auth
	}

	var products []entity.Product
	if ok, err := s.read(ctx, repository.KeyProducts, &products); err != nil {
		return out, err
	} else if ok {
		if products == nil {
			products = []entity.Product{}
		}
		out.Products = &products
	}

	var suppliers []string
	if ok, err := s.read(ctx, repository.KeySuppliers, &suppliers); err != nil {
		return out, err
	} else if ok {
		if suppliers == nil {
			suppliers = []string{}
		}
		out.Suppliers = &suppliers
	}

	settings := entity.DefaultSettings()
	if ok, err := s.read(ctx, repository.KeySettings, &settings); err != nil {
		return out, err
	} else if ok {
		out.Settings = &settings
	}
	return out, nil
}

// Clear borra todo el estado persistido.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("%w: limpiar almacén: %v", domain.ErrStorage, err)
	}
	return nil
}

func (s *Store) read(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: leer %s: %v", domain.ErrStorage, key, err)
	}
	if !found || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("valor persistido corrupto, se omite")
		return false, nil
	}
	return true, nil
}
