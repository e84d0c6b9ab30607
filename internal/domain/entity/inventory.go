package entity

import "time"

// Inventory es el stock de un producto en una franquicia (una fila por par franquicia+producto).
// Es el único libro de stock: pedidos y ajustes lo modifican.
type Inventory struct {
	ID            int64
	FranchiseID   int64
	ProductID     int64
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStockItem fila de inventario con stock en o bajo el umbral del producto.
type LowStockItem struct {
	FranchiseID       int64
	ProductID         int64
	ProductName       string
	Packing           string
	Manufacturer      string
	StockQuantity     int
	LowStockThreshold int
	UpdatedAt         time.Time
}
