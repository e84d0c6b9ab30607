package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// UpdateOrderStatus aplica una transición de estado con la fila del pedido bloqueada.
// Repetir el estado actual no escribe nada. Cancelar devuelve el stock de cada línea a la franquicia.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, actor domain.Actor, orderID int64, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	next, ok := entity.ParseOrderStatus(in.Status)
	if !ok {
		return nil, domain.NewValidationError("status", "debe ser uno de: pending processing shipped completed cancelled")
	}
	if orderID <= 0 {
		return nil, domain.NewValidationError("id", "debe ser positivo")
	}

	var result *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		order, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !actor.CanAccess(order.FranchiseID) {
			return domain.ErrNotFound
		}
		if order.Status == next {
			result = order
			return nil
		}
		if !order.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
		}

		if next == entity.OrderStatusCancelled {
			items, err := orderRepo.GetItems(ctx, order.ID)
			if err != nil {
				return err
			}
			lines := make([]*entity.OrderItem, len(items))
			for i := range items {
				lines[i] = &items[i].OrderItem
			}
			for _, it := range byProduct(lines) {
				if err := uc.stock.RestockInTx(ctx, invRepo, movRepo,
					order.FranchiseID, it.ProductID, it.Quantity, order.ID, actor.UserID); err != nil {
					return err
				}
			}
		}

		updated, err := orderRepo.UpdateStatus(ctx, order.ID, next)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.FromOrder(result)
	return &resp, nil
}
