package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// InventoryRepository define el puerto para el stock por franquicia+producto.
// Los métodos de escritura se usan dentro de transacciones.
type InventoryRepository interface {
	Get(ctx context.Context, franchiseID, productID int64) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE). ErrNotFound si no existe.
	GetForUpdate(ctx context.Context, franchiseID, productID int64) (*entity.Inventory, error)
	// Upsert fija el stock (INSERT ... ON CONFLICT DO UPDATE) y actualiza inv.ID y timestamps.
	Upsert(ctx context.Context, inv *entity.Inventory) error
	// Decrement resta qty solo si hay stock suficiente y devuelve el stock resultante.
	// ErrInsufficientStock si no existe la fila o el stock es menor que qty.
	Decrement(ctx context.Context, franchiseID, productID int64, qty int) (int, error)
	// Increment suma qty (crea la fila si no existe) y devuelve el stock resultante.
	Increment(ctx context.Context, franchiseID, productID int64, qty int) (int, error)
	List(ctx context.Context, franchiseID int64) ([]*entity.Inventory, error)
	// ListLowStock filas con stock <= umbral del producto, de menor a mayor stock.
	ListLowStock(ctx context.Context, franchiseID int64, limit int) ([]entity.LowStockItem, error)
}
