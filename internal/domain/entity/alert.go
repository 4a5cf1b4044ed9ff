package entity

// AlertType tipo de alerta derivada.
type AlertType string

const (
	AlertLow AlertType = "low" // 0 < stock <= umbral
	AlertOut AlertType = "out" // stock == 0
)

// Alert señal derivada de los productos; nunca se persiste por separado.
type Alert struct {
	Type      AlertType `json:"type"`
	ProductID int64     `json:"productId"`
	Message   string    `json:"message"`
}
