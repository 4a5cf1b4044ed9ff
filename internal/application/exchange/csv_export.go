package exchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gosimple/slug"

	"github.com/jhoicas/Inventario-stock/internal/application/ports"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// ExportHeader cabecera fija del CSV de alertas.
var ExportHeader = []string{"Type", "Produit", "Stock", "Seuil", "Emplacement", "Fournisseur"}

// Etiquetas de tipo en el CSV.
const (
	LabelOut = "Rupture"
	LabelLow = "Stock faible"
)

// BuildAlertRows resuelve cada alerta contra el catálogo. Una alerta cuyo producto ya no
// existe conserva su tipo y deja vacíos los campos del producto.
func BuildAlertRows(alerts []entity.Alert, products []entity.Product) []ports.AlertRow {
	byID := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		if _, seen := byID[p.ID]; !seen {
			byID[p.ID] = p
		}
	}
	rows := make([]ports.AlertRow, 0, len(alerts))
	for _, a := range alerts {
		r := ports.AlertRow{Kind: a.Type, Label: LabelLow}
		if a.Type == entity.AlertOut {
			r.Label = LabelOut
		}
		if p, ok := byID[a.ProductID]; ok {
			r.Product = p.Name
			r.Stock = strconv.Itoa(p.CurrentStock)
			r.Threshold = strconv.Itoa(p.AlertThreshold)
			r.Location = p.Location
			r.Supplier = p.Supplier
		}
		rows = append(rows, r)
	}
	return rows
}

// WriteAlertsCSV escribe cabecera + una fila por alerta, separadas por ';'.
func WriteAlertsCSV(w io.Writer, rows []ports.AlertRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("escribir cabecera CSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Label, r.Product, r.Stock, r.Threshold, r.Location, r.Supplier}); err != nil {
			return fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFileName nombre del archivo exportado: alertes-<empresa>-<unix>.<ext>.
func ExportFileName(companyName string, now time.Time, ext string) string {
	name := slug.Make(companyName)
	if name == "" {
		name = "stock"
	}
	return fmt.Sprintf("alertes-%s-%d.%s", name, now.Unix(), ext)
}
