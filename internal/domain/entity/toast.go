package entity

// ToastType severidad de una notificación efímera.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// Toast mensaje de un solo slot mostrado al usuario.
type Toast struct {
	Message string    `json:"message"`
	Type    ToastType `json:"type"`
}
