// Package pdf genera el informe de alertas de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa            │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: N ruptures / N stock faible                       │
//	│  TABLA: Type | Produit | Stock | Seuil | Empl. | Fournisseur │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-stock/internal/application/ports"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// namedColors colores admitidos en los ajustes lowStockColor/outOfStockColor.
var namedColors = map[string]*props.Color{
	"orange": {Red: 230, Green: 126, Blue: 34},
	"red":    {Red: 200, Green: 30, Blue: 30},
	"yellow": {Red: 200, Green: 170, Blue: 0},
	"green":  {Red: 40, Green: 150, Blue: 60},
	"blue":   {Red: 30, Green: 90, Blue: 200},
	"purple": {Red: 130, Green: 60, Blue: 170},
	"black":  {Red: 0, Green: 0, Blue: 0},
}

func colorFor(name string, fallback *props.Color) *props.Color {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return fallback
}

// ── Renderer ──────────────────────────────────────────────────────────────────

// AlertReportRenderer implementa ports.AlertReportRenderer usando Maroto v2.
type AlertReportRenderer struct{}

var _ ports.AlertReportRenderer = (*AlertReportRenderer)(nil)

// NewAlertReportRenderer construye el generador.
func NewAlertReportRenderer() *AlertReportRenderer { return &AlertReportRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (g *AlertReportRenderer) Render(report ports.AlertReport) ([]byte, error) {
	company := nonEmpty(report.CompanyName, "Inventaire")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Alertes de stock", true).
		WithAuthor(company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Rows))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	lowColor := colorFor(report.LowStockColor, namedColors["orange"])
	outColor := colorFor(report.OutStockColor, namedColors["red"])
	m.AddRows(tableRows(report.Rows, lowColor, outColor)...)
	if len(report.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Aucune alerte de stock", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de alertas: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, report ports.AlertReport) core.Row {
	fecha := report.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ALERTES DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Généré le "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRow(rows []ports.AlertRow) core.Row {
	var low, out int
	for _, r := range rows {
		if r.Kind == entity.AlertOut {
			out++
		} else {
			low++
		}
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d rupture(s)   |   %d stock(s) faible(s)", out, low), props.Text{
			Size: 9, Top: 2, Color: colorGray,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Type", 2, align.Left),
		h("Produit", 4, align.Left),
		h("Stock", 1, align.Center),
		h("Seuil", 1, align.Center),
		h("Emplacement", 2, align.Left),
		h("Fournisseur", 2, align.Left),
	)
}

func tableRows(rows []ports.AlertRow, lowColor, outColor *props.Color) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		kindColor := lowColor
		if r.Kind == entity.AlertOut {
			kindColor = outColor
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1}))
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: kindColor, Top: 1, Left: 1,
			})),
			cell(r.Product, 4, align.Left),
			cell(r.Stock, 1, align.Center),
			cell(r.Threshold, 1, align.Center),
			cell(r.Location, 2, align.Left),
			cell(r.Supplier, 2, align.Left),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
