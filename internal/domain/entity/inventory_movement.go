package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeSale       = "SALE"       // salida por pedido
	MovementTypeAdjustment = "ADJUSTMENT" // fijación manual del stock
	MovementTypeRestock    = "RESTOCK"    // reingreso por cancelación de pedido
)

// InventoryMovement registro de auditoría de cada cambio de stock.
type InventoryMovement struct {
	ID                int64
	FranchiseID       int64
	ProductID         int64
	Type              string
	Quantity          int // delta con signo: negativo salida, positivo entrada
	ResultingQuantity int
	OrderID           *int64
	CreatedBy         int64
	CreatedAt         time.Time
}
