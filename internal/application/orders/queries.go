package orders

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// GetOrderDetails devuelve el pedido con su cliente y sus líneas (con datos de producto).
// Un pedido de otra franquicia se reporta como inexistente.
func (uc *OrderUseCase) GetOrderDetails(ctx context.Context, actor domain.Actor, orderID int64) (*dto.OrderDetailsResponse, error) {
	details, err := uc.loadDetails(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	resp := &dto.OrderDetailsResponse{
		Order:    dto.FromOrder(&details.Order),
		Customer: dto.FromCustomer(&details.Customer),
		Items:    make([]dto.OrderItemResponse, 0, len(details.Items)),
	}
	for i := range details.Items {
		resp.Items = append(resp.Items, dto.FromOrderItem(&details.Items[i]))
	}
	return resp, nil
}

// ListOrders pedidos visibles para el actor, más recientes primero.
func (uc *OrderUseCase) ListOrders(ctx context.Context, actor domain.Actor, franchiseID int64) ([]dto.OrderListItem, error) {
	return uc.list(ctx, actor, franchiseID, 0)
}

// ListRecentOrders últimos pedidos (limit por defecto 5).
func (uc *OrderUseCase) ListRecentOrders(ctx context.Context, actor domain.Actor, franchiseID int64, limit int) ([]dto.OrderListItem, error) {
	return uc.list(ctx, actor, franchiseID, dto.ClampLimit(limit, dto.DefaultRecentLimit))
}

func (uc *OrderUseCase) list(ctx context.Context, actor domain.Actor, franchiseID int64, limit int) ([]dto.OrderListItem, error) {
	fid, err := actor.ResolveFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.orderRepo.List(ctx, fid, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderListItem, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromOrderSummary(&rows[i]))
	}
	return out, nil
}

func (uc *OrderUseCase) loadDetails(ctx context.Context, actor domain.Actor, orderID int64) (*entity.OrderDetails, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(order.FranchiseID) {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &entity.OrderDetails{Order: *order, Customer: *customer, Items: items}, nil
}
