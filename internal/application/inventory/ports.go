package inventory

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad entre el stock y su movimiento de auditoría.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
