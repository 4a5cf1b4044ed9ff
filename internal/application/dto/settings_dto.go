package dto

import "github.com/jhoicas/Inventario-stock/internal/domain/entity"

// UpdateSettingsRequest merge superficial de ajustes; los campos ausentes no cambian.
type UpdateSettingsRequest struct {
	UserEmail            *string `json:"userEmail" validate:"omitempty,max=254"`
	CompanyName          *string `json:"companyName" validate:"omitempty,max=200"`
	AutoExportThreshold  *int    `json:"autoExportThreshold" validate:"omitempty,min=0"`
	EnableBarcodeScanner *bool   `json:"enableBarcodeScanner"`
	LowStockColor        *string `json:"lowStockColor" validate:"omitempty,max=32"`
	OutOfStockColor      *string `json:"outOfStockColor" validate:"omitempty,max=32"`
	EmailNotifications   *string `json:"emailNotifications" validate:"omitempty,oneof=none daily weekly critical"`
}

// ToPatch convierte al parche de dominio.
func (r UpdateSettingsRequest) ToPatch() entity.SettingsPatch {
	return entity.SettingsPatch{
		UserEmail:            r.UserEmail,
		CompanyName:          r.CompanyName,
		AutoExportThreshold:  r.AutoExportThreshold,
		EnableBarcodeScanner: r.EnableBarcodeScanner,
		LowStockColor:        r.LowStockColor,
		OutOfStockColor:      r.OutOfStockColor,
		EmailNotifications:   r.EmailNotifications,
	}
}
