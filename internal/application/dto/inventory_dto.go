package dto

import "time"

// UpdateInventoryRequest body de PUT /api/inventory: fija el stock del producto en la franquicia.
// El tope de stockQuantity deja margen en INTEGER para reingresos por cancelación.
type UpdateInventoryRequest struct {
	FranchiseID   int64 `json:"franchiseId" validate:"gte=0"`
	ProductID     int64 `json:"productId" validate:"required,gt=0"`
	StockQuantity *int  `json:"stockQuantity" validate:"required,gte=0,lte=1000000000"`
}

// InventoryResponse stock de un producto en una franquicia.
type InventoryResponse struct {
	ID            int64     `json:"id"`
	FranchiseID   int64     `json:"franchiseId"`
	ProductID     int64     `json:"productId"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// InventoryMovementResponse movimiento del libro de inventario.
type InventoryMovementResponse struct {
	ID                int64     `json:"id"`
	FranchiseID       int64     `json:"franchiseId"`
	ProductID         int64     `json:"productId"`
	Type              string    `json:"type"`
	Quantity          int       `json:"quantity"`
	ResultingQuantity int       `json:"resultingQuantity"`
	OrderID           *int64    `json:"orderId"`
	CreatedBy         int64     `json:"createdBy"`
	CreatedAt         time.Time `json:"createdAt"`
}

// LowStockItemResponse producto en o bajo su umbral en una franquicia.
type LowStockItemResponse struct {
	FranchiseID       int64     `json:"franchiseId"`
	ProductID         int64     `json:"productId"`
	Name              string    `json:"name"`
	Packing           string    `json:"packing"`
	Manufacturer      string    `json:"manufacturer"`
	StockQuantity     int       `json:"stockQuantity"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
