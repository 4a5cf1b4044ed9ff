package exchange

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/application/ports"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// Catalog la parte del motor de stock que usan export e import.
type Catalog interface {
	Products() []entity.Product
	Alerts() []entity.Alert
	Settings() entity.AppSettings
	AddProducts(products []entity.Product)
}

// Notifier canal de notificaciones.
type Notifier interface {
	Show(message string, kind entity.ToastType)
}

// ExportFile archivo generado listo para descargar.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ImportResult resumen de una importación.
type ImportResult struct {
	Imported  int              `json:"imported"`
	Products  []entity.Product `json:"products"`
	Suppliers []string         `json:"suppliers"`
}

// UseCase export del informe de alertas e import de catálogo CSV.
type UseCase struct {
	catalog  Catalog
	notifier Notifier
	renderer ports.AlertReportRenderer
	now      func() time.Time
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso. renderer puede ser nil (sin PDF).
func NewUseCase(catalog Catalog, notifier Notifier, renderer ports.AlertReportRenderer, log zerolog.Logger) *UseCase {
	return &UseCase{catalog: catalog, notifier: notifier, renderer: renderer, now: time.Now, log: log}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

func (uc *UseCase) report() ports.AlertReport {
	settings := uc.catalog.Settings()
	return ports.AlertReport{
		CompanyName:   settings.CompanyName,
		GeneratedAt:   uc.now(),
		LowStockColor: settings.LowStockColor,
		OutStockColor: settings.OutOfStockColor,
		Rows:          BuildAlertRows(uc.catalog.Alerts(), uc.catalog.Products()),
	}
}

// ExportCSV genera el CSV de las alertas vigentes.
func (uc *UseCase) ExportCSV() (*ExportFile, error) {
	report := uc.report()
	var buf bytes.Buffer
	if err := WriteAlertsCSV(&buf, report.Rows); err != nil {
		uc.notifier.Show("❌ Erreur lors de l'export des alertes", entity.ToastError)
		return nil, err
	}
	uc.notifier.Show("✅ Export prêt à être partagé", entity.ToastSuccess)
	uc.log.Info().Int("rows", len(report.Rows)).Msg("alertas exportadas a CSV")
	return &ExportFile{
		Name:        ExportFileName(report.CompanyName, report.GeneratedAt, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// ExportPDF genera el informe de alertas en PDF.
func (uc *UseCase) ExportPDF() (*ExportFile, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("exportar PDF: renderer no configurado")
	}
	report := uc.report()
	data, err := uc.renderer.Render(report)
	if err != nil {
		uc.notifier.Show("❌ Erreur lors de l'export des alertes", entity.ToastError)
		return nil, err
	}
	uc.notifier.Show("✅ Export prêt à être partagé", entity.ToastSuccess)
	return &ExportFile{
		Name:        ExportFileName(report.CompanyName, report.GeneratedAt, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// Preview parsea el CSV sin modificar el catálogo (cabeceras para el mapeo).
func (uc *UseCase) Preview(content []byte) (*Table, error) {
	return Parse(content)
}

// Import parsea, mapea y agrega los productos al catálogo.
func (uc *UseCase) Import(content []byte, mapping Mapping) (*ImportResult, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	table, err := Parse(content)
	if err != nil {
		return nil, err
	}
	products := BuildProducts(table, mapping, uc.now())
	uc.catalog.AddProducts(products)
	uc.notifier.Show(fmt.Sprintf("✅ %d produits importés !", len(products)), entity.ToastSuccess)
	uc.log.Info().Int("count", len(products)).Msg("catálogo importado desde CSV")

	suppliers := make([]string, 0)
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.Supplier] {
			seen[p.Supplier] = true
			suppliers = append(suppliers, p.Supplier)
		}
	}
	return &ImportResult{Imported: len(products), Products: products, Suppliers: suppliers}, nil
}
