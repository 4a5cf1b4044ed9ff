package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrNotAuthenticated = errors.New("sesión no iniciada")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrOutOfStock       = errors.New("producto en ruptura de stock")
	ErrScannerDisabled  = errors.New("escáner de códigos deshabilitado")
	ErrRemote           = errors.New("servicio remoto no disponible")
	ErrStorage          = errors.New("error de almacenamiento")
)
