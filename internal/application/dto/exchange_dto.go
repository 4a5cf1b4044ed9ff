package dto

import (
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

// PreviewRequest CSV en texto plano para previsualizar.
type PreviewRequest struct {
	Content string `json:"content" validate:"required"`
}

// ImportRequest CSV + mapeo campo → índice de columna.
type ImportRequest struct {
	Content string         `json:"content" validate:"required"`
	Mapping map[string]int `json:"mapping" validate:"required,min=1"`
}

// DashboardResponse indicadores y últimas alertas.
type DashboardResponse struct {
	Stats     inventory.Stats `json:"stats"`
	Alerts    []entity.Alert  `json:"alerts"`
	Suppliers int             `json:"suppliers"`
}

// NotificationResponse toast visible, si hay uno.
type NotificationResponse struct {
	Visible bool          `json:"visible"`
	Toast   *entity.Toast `json:"toast,omitempty"`
}
