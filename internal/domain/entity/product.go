package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un medicamento del catálogo (global, sin franquicia).
// El stock vive en Inventory por franquicia; StockQuantity es la suma derivada en lecturas.
type Product struct {
	PrCode               int64 // clave primaria
	Category             string
	Manufacturer         string
	Name                 string
	Packing              string          // ej. "10x10 tabletas"
	MRP                  decimal.Decimal // precio máximo de venta
	CasePack             int
	Composition          *string
	GST                  decimal.Decimal // porcentaje, ej. 12
	Discount             decimal.Decimal // porcentaje de descuento sugerido
	ExpiryDate           time.Time
	PrescriptionRequired bool
	Supplier             string
	LowStockThreshold    int
	StockQuantity        int // solo lectura: SUM(inventory.stock_quantity)
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
