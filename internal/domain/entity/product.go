package entity

import "time"

// Valores por defecto de un producto recién importado.
const (
	DefaultAlertThreshold = 5
	// SupplierOther es el proveedor centinela para productos huérfanos o sin proveedor.
	SupplierOther = "Autre"
)

// Product representa un artículo del catálogo con su stock y su historial de movimientos.
// Stock nunca negativo; Movements solo crece (salvo el reinicio de SetInitialStock).
type Product struct {
	ID               int64           `json:"id"`
	Supplier         string          `json:"supplier"`
	EAN              string          `json:"ean"`
	Name             string          `json:"name"`
	Reference        string          `json:"reference,omitempty"`
	Description      string          `json:"description,omitempty"`
	Price            *float64        `json:"price,omitempty"`
	Quantity         string          `json:"quantity,omitempty"` // presentación, ej. "2" (kg)
	Unit             string          `json:"unit,omitempty"`
	Category         string          `json:"category,omitempty"`
	Animal           string          `json:"animal,omitempty"`
	Brand            string          `json:"brand,omitempty"`
	Location         string          `json:"location,omitempty"`
	CurrentStock     int             `json:"currentStock"`
	AlertThreshold   int             `json:"alertThreshold"`
	Movements        []StockMovement `json:"movements"`
	StockInitialized bool            `json:"stockInitialized"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Clone devuelve una copia profunda (el historial no se comparte con el original).
func (p Product) Clone() Product {
	out := p
	if p.Price != nil {
		price := *p.Price
		out.Price = &price
	}
	out.Movements = make([]StockMovement, len(p.Movements))
	copy(out.Movements, p.Movements)
	return out
}

// ProductPatch campos opcionales para UpdateProduct; nil = no tocar.
// ID y CreatedAt no son modificables.
type ProductPatch struct {
	Supplier         *string          `json:"supplier,omitempty"`
	EAN              *string          `json:"ean,omitempty"`
	Name             *string          `json:"name,omitempty"`
	Reference        *string          `json:"reference,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Price            *float64         `json:"price,omitempty"`
	Quantity         *string          `json:"quantity,omitempty"`
	Unit             *string          `json:"unit,omitempty"`
	Category         *string          `json:"category,omitempty"`
	Animal           *string          `json:"animal,omitempty"`
	Brand            *string          `json:"brand,omitempty"`
	Location         *string          `json:"location,omitempty"`
	CurrentStock     *int             `json:"currentStock,omitempty"`
	AlertThreshold   *int             `json:"alertThreshold,omitempty"`
	StockInitialized *bool            `json:"stockInitialized,omitempty"`
	Movements        *[]StockMovement `json:"movements,omitempty"`
}

// Apply aplica el parche sobre p. CurrentStock se recorta a cero.
func (patch ProductPatch) Apply(p *Product) {
	setString(&p.Supplier, patch.Supplier)
	setString(&p.EAN, patch.EAN)
	setString(&p.Name, patch.Name)
	setString(&p.Reference, patch.Reference)
	setString(&p.Description, patch.Description)
	setString(&p.Quantity, patch.Quantity)
	setString(&p.Unit, patch.Unit)
	setString(&p.Category, patch.Category)
	setString(&p.Animal, patch.Animal)
	setString(&p.Brand, patch.Brand)
	setString(&p.Location, patch.Location)
	if patch.Price != nil {
		price := *patch.Price
		p.Price = &price
	}
	if patch.CurrentStock != nil {
		p.CurrentStock = max(0, *patch.CurrentStock)
	}
	if patch.AlertThreshold != nil {
		p.AlertThreshold = *patch.AlertThreshold
	}
	if patch.StockInitialized != nil {
		p.StockInitialized = *patch.StockInitialized
	}
	if patch.Movements != nil {
		p.Movements = make([]StockMovement, len(*patch.Movements))
		copy(p.Movements, *patch.Movements)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
