package repository

import "context"

// TokenStore define el puerto del slot seguro donde vive el token de autenticación.
type TokenStore interface {
	Get(ctx context.Context) (token string, found bool, err error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
