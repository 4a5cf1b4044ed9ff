package inventory

import "github.com/jhoicas/Inventario-stock/internal/domain/entity"

// Notifier puerto hacia el canal de notificaciones.
type Notifier interface {
	Show(message string, kind entity.ToastType)
}

// Recorder recibe métricas de las operaciones del motor.
type Recorder interface {
	Operation(name string)
	Alerts(alerts []entity.Alert)
}

// ChangeListener se invoca tras cada mutación, fuera del lock, con el estado ya actualizado.
type ChangeListener func(entity.Snapshot)
