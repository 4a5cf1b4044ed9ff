package ports

import (
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// AlertRow fila del informe de alertas, ya resuelta contra el catálogo.
// Los campos de producto ausentes quedan vacíos.
type AlertRow struct {
	Kind      entity.AlertType
	Label     string // "Rupture" | "Stock faible"
	Product   string
	Stock     string
	Threshold string
	Location  string
	Supplier  string
}

// AlertReport datos del informe exportable (CSV y PDF comparten las filas).
type AlertReport struct {
	CompanyName   string
	GeneratedAt   time.Time
	LowStockColor string
	OutStockColor string
	Rows          []AlertRow
}

// AlertReportRenderer genera el PDF del informe de alertas.
type AlertReportRenderer interface {
	Render(report AlertReport) ([]byte, error)
}
