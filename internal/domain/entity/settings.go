package entity

// Frecuencias válidas de notificación por email.
const (
	EmailNone     = "none"
	EmailDaily    = "daily"
	EmailWeekly   = "weekly"
	EmailCritical = "critical"
)

// AppSettings preferencias de la aplicación (merge superficial en cada actualización).
type AppSettings struct {
	UserEmail            string `json:"userEmail"`
	CompanyName          string `json:"companyName"`
	AutoExportThreshold  int    `json:"autoExportThreshold"`
	EnableBarcodeScanner bool   `json:"enableBarcodeScanner"`
	LowStockColor        string `json:"lowStockColor"`
	OutOfStockColor      string `json:"outOfStockColor"`
	EmailNotifications   string `json:"emailNotifications"`
}

// DefaultSettings valores iniciales antes de cargar desde persistencia.
func DefaultSettings() AppSettings {
	return AppSettings{
		AutoExportThreshold:  5,
		EnableBarcodeScanner: true,
		LowStockColor:        "orange",
		OutOfStockColor:      "red",
		EmailNotifications:   EmailNone,
	}
}

// SettingsPatch actualización parcial de AppSettings.
type SettingsPatch struct {
	UserEmail            *string `json:"userEmail,omitempty"`
	CompanyName          *string `json:"companyName,omitempty"`
	AutoExportThreshold  *int    `json:"autoExportThreshold,omitempty"`
	EnableBarcodeScanner *bool   `json:"enableBarcodeScanner,omitempty"`
	LowStockColor        *string `json:"lowStockColor,omitempty"`
	OutOfStockColor      *string `json:"outOfStockColor,omitempty"`
	EmailNotifications   *string `json:"emailNotifications,omitempty"`
}

// Apply merge superficial sobre s.
func (patch SettingsPatch) Apply(s *AppSettings) {
	setString(&s.UserEmail, patch.UserEmail)
	setString(&s.CompanyName, patch.CompanyName)
	setString(&s.LowStockColor, patch.LowStockColor)
	setString(&s.OutOfStockColor, patch.OutOfStockColor)
	setString(&s.EmailNotifications, patch.EmailNotifications)
	if patch.AutoExportThreshold != nil {
		s.AutoExportThreshold = *patch.AutoExportThreshold
	}
	if patch.EnableBarcodeScanner != nil {
		s.EnableBarcodeScanner = *patch.EnableBarcodeScanner
	}
}
