package entity

import "time"

// Motivos de movimiento usados por la aplicación.
const (
	ReasonAdd       = "Ajout"
	ReasonRemove    = "Retrait"
	ReasonInitial   = "Stock initial"
	ReasonScanSale  = "Vente scannée"
	ReasonQuickSale = "Vente rapide"
	ReasonQuickAdd  = "Ajout rapide"
	ReasonRestock   = "Réapprovisionnement"
	ReasonSale      = "Vente"
)

// StockMovement registro inmutable de un cambio de stock.
// Change es el delta pedido (con signo); NewStock el stock resultante ya recortado a cero.
type StockMovement struct {
	Date     time.Time `json:"date"`
	Change   int       `json:"change"`
	NewStock int       `json:"newStock"`
	Reason   string    `json:"reason"`
}

// DefaultReason devuelve el motivo cuando el llamador no indica uno.
func DefaultReason(change int) string {
	if change > 0 {
		return ReasonAdd
	}
	return ReasonRemove
}
