package inventory

import (
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// Classify clasifica un producto según su stock (servicio de dominio puro).
// Solo los productos con stock inicializado pueden generar alerta.
func Classify(p entity.Product) (entity.AlertType, bool) {
	if !p.StockInitialized {
		return "", false
	}
	switch {
	case p.CurrentStock == 0:
		return entity.AlertOut, true
	case p.CurrentStock > 0 && p.CurrentStock <= p.AlertThreshold:
		return entity.AlertLow, true
	}
	return "", false
}

// DeriveAlerts recalcula el conjunto completo de alertas a partir de los productos.
// Orden: primero todas las alertas "low", luego todas las "out", cada grupo en el orden del catálogo.
func DeriveAlerts(products []entity.Product) []entity.Alert {
	low := make([]entity.Alert, 0)
	out := make([]entity.Alert, 0)
	for _, p := range products {
		kind, ok := Classify(p)
		if !ok {
			continue
		}
		if kind == entity.AlertLow {
			low = append(low, entity.Alert{
				Type:      entity.AlertLow,
				ProductID: p.ID,
				Message:   fmt.Sprintf("Stock faible: %s (%d restant)", p.Name, p.CurrentStock),
			})
			continue
		}
		out = append(out, entity.Alert{
			Type:      entity.AlertOut,
			ProductID: p.ID,
			Message:   fmt.Sprintf("Rupture de stock: %s", p.Name),
		})
	}
	return append(low, out...)
}

// ApplyChange devuelve el nuevo stock tras aplicar change, recortado a cero.
func ApplyChange(current, change int) int {
	return max(0, current+change)
}
