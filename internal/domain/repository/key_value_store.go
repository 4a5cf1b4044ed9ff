package repository

import "context"

// Claves lógicas del estado persistido; cada valor es un documento JSON.
const (
	KeyAuth      = "auth"
	KeyProducts  = "products"
	KeySuppliers = "suppliers"
	KeySettings  = "settings"
)

// KeyValueStore define el puerto de persistencia local (equivalente a un AsyncStorage).
type KeyValueStore interface {
	// Get devuelve found=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Clear elimina todas las claves del almacén.
	Clear(ctx context.Context) error
}
