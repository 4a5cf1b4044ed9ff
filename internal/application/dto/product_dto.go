package dto

import (
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// ProductInput alta manual de un producto.
type ProductInput struct {
	ID          int64    `json:"id" validate:"min=0"`
	Supplier    string   `json:"supplier" validate:"max=200"`
	EAN         string   `json:"ean" validate:"max=64"`
	Name        string   `json:"name" validate:"required,max=300"`
	Reference   string   `json:"reference"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Quantity    string   `json:"quantity"`
	Unit        string   `json:"unit"`
	Category    string   `json:"category"`
	Animal      string   `json:"animal"`
	Brand       string   `json:"brand"`
	Location    string   `json:"location"`
}

// ToEntity construye el producto nuevo. Sin id se asigna createdAt(ms) + posición.
func (in ProductInput) ToEntity(now time.Time, offset int) entity.Product {
	id := in.ID
	if id == 0 {
		id = now.UnixMilli() + int64(offset)
	}
	supplier := in.Supplier
	if supplier == "" {
		supplier = entity.SupplierOther
	}
	return entity.Product{
		ID:             id,
		Supplier:       supplier,
		EAN:            in.EAN,
		Name:           in.Name,
		Reference:      in.Reference,
		Description:    in.Description,
		Price:          in.Price,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		Category:       in.Category,
		Animal:         in.Animal,
		Brand:          in.Brand,
		Location:       in.Location,
		AlertThreshold: entity.DefaultAlertThreshold,
		Movements:      []entity.StockMovement{},
		CreatedAt:      now,
	}
}

// CreateProductsRequest alta en bloque.
type CreateProductsRequest struct {
	Products []ProductInput `json:"products" validate:"required,min=1,dive"`
}

// ProductListResponse listado (o resultado de búsqueda).
type ProductListResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
}

// UpdateStockRequest ajuste relativo de stock. Reason vacío = Ajout/Retrait según el signo.
type UpdateStockRequest struct {
	Change int    `json:"change"`
	Reason string `json:"reason" validate:"max=100"`
}

// InitialStockRequest inicialización de stock. Threshold 0 = umbral por defecto (5).
type InitialStockRequest struct {
	Quantity  int `json:"quantity" validate:"min=0"`
	Threshold int `json:"threshold" validate:"min=0"`
}

// ScanRequest venta por código de barras.
type ScanRequest struct {
	EAN string `json:"ean" validate:"required,max=64"`
}

// SupplierRequest alta de proveedor. Nombres en blanco se ignoran sin error.
type SupplierRequest struct {
	Name string `json:"name" validate:"max=200"`
}

// SupplierListResponse proveedores en orden de alta.
type SupplierListResponse struct {
	Suppliers []string `json:"suppliers"`
}

// AlertListResponse alertas derivadas y sus totales.
type AlertListResponse struct {
	Alerts []entity.Alert `json:"alerts"`
	Low    int            `json:"low"`
	Out    int            `json:"out"`
}
