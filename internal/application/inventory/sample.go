package inventory

import (
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

const sampleSupplier = "Demo"

const day = 24 * time.Hour

// sampleProducts catálogo de demostración: dos en alerta baja, uno agotado y uno sano.
func sampleProducts(now time.Time) []entity.Product {
	price := func(v float64) *float64 { return &v }
	mov := func(ago time.Duration, change, newStock int, reason string) entity.StockMovement {
		return entity.StockMovement{Date: now.Add(-ago), Change: change, NewStock: newStock, Reason: reason}
	}
	return []entity.Product{
		{
			ID: 1, Supplier: sampleSupplier, EAN: "5410340221013", Name: "Croquettes Chat Royal Canin 2kg",
			Description: "Alimentation complète pour chat adulte", Price: price(15.99), Quantity: "2", Unit: "kg",
			Category: "Alimentation", Animal: "Chat", Brand: "Royal Canin", Location: "Rayon A1",
			CurrentStock: 8, AlertThreshold: 5,
			Movements: []entity.StockMovement{
				mov(day, 10, 10, entity.ReasonRestock),
				mov(0, -2, 8, entity.ReasonSale),
			},
			StockInitialized: true, CreatedAt: now,
		},
		{
			ID: 2, Supplier: sampleSupplier, EAN: "5410340221020", Name: "Croquettes Chien Pro Plan 3kg",
			Description: "Alimentation premium pour chien", Price: price(22.50), Quantity: "3", Unit: "kg",
			Category: "Alimentation", Animal: "Chien", Brand: "Pro Plan", Location: "Rayon B2",
			CurrentStock: 3, AlertThreshold: 8,
			Movements: []entity.StockMovement{
				mov(2*day, 5, 5, entity.ReasonInitial),
				mov(day, -2, 3, entity.ReasonSale),
			},
			StockInitialized: true, CreatedAt: now,
		},
		{
			ID: 3, Supplier: sampleSupplier, EAN: "3456789012345", Name: "Litière Agglomérante 10L",
			Description: "Litière haute absorption", Price: price(8.90), Quantity: "10", Unit: "L",
			Category: "Hygiène", Animal: "Chat", Brand: "Catsan", Location: "Rayon C3",
			CurrentStock: 0, AlertThreshold: 3,
			Movements: []entity.StockMovement{
				mov(3*day, 5, 5, entity.ReasonInitial),
				mov(0, -5, 0, entity.ReasonSale),
			},
			StockInitialized: true, CreatedAt: now,
		},
		{
			ID: 4, Supplier: sampleSupplier, EAN: "7890123456789", Name: "Jouet Corde Chien",
			Description: "Jouet en corde naturelle", Price: price(4.99), Quantity: "1", Unit: "pièce",
			Category: "Jouets", Animal: "Chien", Brand: "Kong", Location: "Rayon D4",
			CurrentStock: 12, AlertThreshold: 2,
			Movements: []entity.StockMovement{
				mov(0, 12, 12, entity.ReasonInitial),
			},
			StockInitialized: true, CreatedAt: now,
		},
	}
}
