package orders

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción que incluye repos de pedidos e inventario.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// StockAdjuster integra pedidos con inventario usando los repositorios del caller (misma transacción).
// Si retorna error (ej: ErrInsufficientStock), el caller debe hacer rollback.
type StockAdjuster interface {
	DecrementInTx(
		ctx context.Context,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		franchiseID, productID int64,
		qty int,
		orderID, userID int64,
	) error
	RestockInTx(
		ctx context.Context,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		franchiseID, productID int64,
		qty int,
		orderID, userID int64,
	) error
}

// BillRenderer genera la representación PDF de una factura.
type BillRenderer interface {
	RenderBill(ctx context.Context, bill *dto.BillDTO) ([]byte, error)
}
