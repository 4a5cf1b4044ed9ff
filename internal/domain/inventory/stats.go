package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// Stats indicadores del tablero.
type Stats struct {
	TotalProducts       int             `json:"totalProducts"`
	InitializedProducts int             `json:"initializedProducts"`
	TotalValue          decimal.Decimal `json:"totalValue"`
	LowStock            int             `json:"lowStock"`
	OutOfStock          int             `json:"outOfStock"`
}

// ComputeStats valoriza el stock inicializado: Σ stock × precio (precio ausente = 0).
func ComputeStats(products []entity.Product) Stats {
	s := Stats{TotalProducts: len(products), TotalValue: decimal.Zero}
	for _, p := range products {
		if !p.StockInitialized {
			continue
		}
		s.InitializedProducts++
		if p.Price != nil {
			line := decimal.NewFromFloat(*p.Price).Mul(decimal.NewFromInt(int64(p.CurrentStock)))
			s.TotalValue = s.TotalValue.Add(line)
		}
		switch kind, ok := Classify(p); {
		case ok && kind == entity.AlertLow:
			s.LowStock++
		case ok && kind == entity.AlertOut:
			s.OutOfStock++
		}
	}
	s.TotalValue = s.TotalValue.Round(2)
	return s
}
