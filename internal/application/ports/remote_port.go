package ports

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// RemoteSyncClient define el puerto de salida hacia el servidor de sincronización.
// El token es opaco para la aplicación; solo se reenvía como bearer.
type RemoteSyncClient interface {
	// Login intercambia credenciales por un token. Cualquier respuesta no exitosa es un error.
	Login(ctx context.Context, email, password string) (string, error)
	// FetchData obtiene el estado remoto; campos ausentes quedan en nil.
	FetchData(ctx context.Context, token string) (*entity.RemoteData, error)
	// Push envía el snapshot completo. El cuerpo de la respuesta se ignora.
	Push(ctx context.Context, token string, snapshot entity.Snapshot) error
}
