package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para movimientos de inventario.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// List más recientes primero. productID = 0 no filtra por producto.
	List(ctx context.Context, franchiseID, productID int64, limit int) ([]*entity.InventoryMovement, error)
}
