package inventory

import (
	"context"
	"errors"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// InventoryUseCase ajusta y consulta el stock por franquicia. Toda escritura pasa por una
// transacción que bloquea la fila (SELECT FOR UPDATE) y deja un movimiento de auditoría.
type InventoryUseCase struct {
	txRunner      TxRunner
	invRepo       repository.InventoryRepository
	movRepo       repository.InventoryMovementRepository
	productRepo   repository.ProductRepository
	franchiseRepo repository.FranchiseRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	franchiseRepo repository.FranchiseRepository,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:      txRunner,
		invRepo:       invRepo,
		movRepo:       movRepo,
		productRepo:   productRepo,
		franchiseRepo: franchiseRepo,
	}
}

// UpdateInventory fija el stock de un producto en una franquicia (upsert "set to").
// Si la fila existe se sobrescribe la cantidad; si no, se crea. El delta queda como movimiento ADJUSTMENT.
func (uc *InventoryUseCase) UpdateInventory(ctx context.Context, actor domain.Actor, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	franchiseID, err := actor.ResolveFranchise(in.FranchiseID)
	if err != nil {
		return nil, err
	}
	if franchiseID == 0 {
		return nil, domain.NewValidationError("franchiseId", "es obligatorio")
	}
	if _, err := uc.franchiseRepo.GetByID(ctx, franchiseID); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.GetByID(ctx, in.ProductID); err != nil {
		return nil, err
	}

	qty := *in.StockQuantity
	var result *entity.Inventory
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		previous := 0
		current, err := invRepo.GetForUpdate(ctx, franchiseID, in.ProductID)
		switch {
		case err == nil:
			previous = current.StockQuantity
		case errors.Is(err, domain.ErrNotFound):
		default:
			return err
		}

		inv := &entity.Inventory{FranchiseID: franchiseID, ProductID: in.ProductID, StockQuantity: qty}
		if err := invRepo.Upsert(ctx, inv); err != nil {
			return err
		}
		result = inv

		delta := qty - previous
		if delta == 0 {
			return nil
		}
		return movRepo.Create(ctx, &entity.InventoryMovement{
			FranchiseID:       franchiseID,
			ProductID:         in.ProductID,
			Type:              entity.MovementTypeAdjustment,
			Quantity:          delta,
			ResultingQuantity: qty,
			CreatedBy:         actor.UserID,
		})
	})
	if err != nil {
		return nil, err
	}
	resp := dto.FromInventory(result)
	return &resp, nil
}

// List devuelve el inventario visible para el actor.
func (uc *InventoryUseCase) List(ctx context.Context, actor domain.Actor, franchiseID int64) ([]dto.InventoryResponse, error) {
	fid, err := actor.ResolveFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	list, err := uc.invRepo.List(ctx, fid)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.FromInventory(inv))
	}
	return out, nil
}

// ListMovements historial de movimientos, más recientes primero. productID = 0 no filtra.
func (uc *InventoryUseCase) ListMovements(ctx context.Context, actor domain.Actor, franchiseID, productID int64, limit int) ([]dto.InventoryMovementResponse, error) {
	fid, err := actor.ResolveFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	if productID < 0 {
		return nil, domain.NewValidationError("productId", "debe ser positivo")
	}
	list, err := uc.movRepo.List(ctx, fid, productID, dto.ClampLimit(limit, dto.MaxListLimit))
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.FromMovement(m))
	}
	return out, nil
}

// LowStock productos en o bajo su umbral, de menor a mayor stock.
func (uc *InventoryUseCase) LowStock(ctx context.Context, actor domain.Actor, franchiseID int64, limit int) ([]dto.LowStockItemResponse, error) {
	fid, err := actor.ResolveFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	items, err := uc.invRepo.ListLowStock(ctx, fid, dto.ClampLimit(limit, dto.DefaultLowStockLimit))
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromLowStockItem(it))
	}
	return out, nil
}

// DecrementInTx descuenta stock por una venta usando los repositorios de la transacción del caller.
// ErrInsufficientStock si no alcanza; el caller debe abortar la transacción.
func (uc *InventoryUseCase) DecrementInTx(
	ctx context.Context,
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	franchiseID, productID int64,
	qty int,
	orderID, userID int64,
) error {
	remaining, err := invRepo.Decrement(ctx, franchiseID, productID, qty)
	if err != nil {
		return err
	}
	return movRepo.Create(ctx, &entity.InventoryMovement{
		FranchiseID:       franchiseID,
		ProductID:         productID,
		Type:              entity.MovementTypeSale,
		Quantity:          -qty,
		ResultingQuantity: remaining,
		OrderID:           &orderID,
		CreatedBy:         userID,
	})
}

// RestockInTx devuelve stock al inventario (cancelación de pedido) dentro de la transacción del caller.
func (uc *InventoryUseCase) RestockInTx(
	ctx context.Context,
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	franchiseID, productID int64,
	qty int,
	orderID, userID int64,
) error {
	total, err := invRepo.Increment(ctx, franchiseID, productID, qty)
	if err != nil {
		return err
	}
	return movRepo.Create(ctx, &entity.InventoryMovement{
		FranchiseID:       franchiseID,
		ProductID:         productID,
		Type:              entity.MovementTypeRestock,
		Quantity:          qty,
		ResultingQuantity: total,
		OrderID:           &orderID,
		CreatedBy:         userID,
	})
}
