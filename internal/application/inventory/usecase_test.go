package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (*memory.Store, *inventory.InventoryUseCase, *entity.Franchise) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	franchise := &entity.Franchise{Name: "Centro", Address: "Calle 1", ContactNumber: "1", Email: "c@f.test", IsActive: true}
	require.NoError(t, store.Franchises().Create(ctx, franchise))
	for _, code := range []int64{201, 202} {
		require.NoError(t, store.Products().Create(ctx, &entity.Product{
			PrCode: code, Name: "Producto", Packing: "1x10", MRP: decimal.NewFromInt(10), CasePack: 1, LowStockThreshold: 10,
		}))
	}
	uc := inventory.NewInventoryUseCase(store, store.Inventory(), store.Movements(), store.Products(), store.Franchises())
	return store, uc, franchise
}

func qty(n int) *int { return &n }

func TestUpdateInventory_UpsertDejaUnaFila(t *testing.T) {
	store, uc, franchise := setup(t)
	ctx := context.Background()
	actor := domain.Actor{UserID: 3, FranchiseID: franchise.ID, Role: domain.RoleManager}

	first, err := uc.UpdateInventory(ctx, actor, dto.UpdateInventoryRequest{ProductID: 201, StockQuantity: qty(15)})
	require.NoError(t, err)
	second, err := uc.UpdateInventory(ctx, actor, dto.UpdateInventoryRequest{ProductID: 201, StockQuantity: qty(4)})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.StockQuantity)
	assert.Equal(t, 1, store.InventoryRowCount())

	list, err := uc.List(ctx, actor, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].StockQuantity)

	movs, err := uc.ListMovements(ctx, actor, 0, 201, 0)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, -11, movs[0].Quantity)
	assert.Equal(t, 15, movs[1].Quantity)
	assert.Equal(t, entity.MovementTypeAdjustment, movs[0].Type)
}

func TestUpdateInventory_MismaCantidadNoRegistraMovimiento(t *testing.T) {
	_, uc, franchise := setup(t)
	ctx := context.Background()
	actor := domain.Actor{UserID: 3, FranchiseID: franchise.ID, Role: domain.RoleStaff}

	for i := 0; i < 2; i++ {
		_, err := uc.UpdateInventory(ctx, actor, dto.UpdateInventoryRequest{ProductID: 202, StockQuantity: qty(8)})
		require.NoError(t, err)
	}
	movs, err := uc.ListMovements(ctx, actor, 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

func TestUpdateInventory_Validaciones(t *testing.T) {
	_, uc, franchise := setup(t)
	ctx := context.Background()
	staff := domain.Actor{UserID: 3, FranchiseID: franchise.ID, Role: domain.RoleStaff}
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	_, err := uc.UpdateInventory(ctx, staff, dto.UpdateInventoryRequest{ProductID: 201, StockQuantity: qty(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateInventory(ctx, staff, dto.UpdateInventoryRequest{ProductID: 201})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateInventory(ctx, staff, dto.UpdateInventoryRequest{ProductID: 201, StockQuantity: qty(2147483647)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock por encima del tope de INTEGER con margen")

	_, err = uc.UpdateInventory(ctx, admin, dto.UpdateInventoryRequest{ProductID: 201, StockQuantity: qty(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "admin sin franquicia debe indicarla")

	_, err = uc.UpdateInventory(ctx, staff, dto.UpdateInventoryRequest{ProductID: 999, StockQuantity: qty(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateInventory(ctx, staff, dto.UpdateInventoryRequest{FranchiseID: franchise.ID + 1, ProductID: 201, StockQuantity: qty(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLowStock(t *testing.T) {
	_, uc, franchise := setup(t)
	ctx := context.Background()
	actor := domain.Actor{UserID: 3, FranchiseID: franchise.ID, Role: domain.RoleStaff}

	_, err := uc.UpdateInventory(ctx, actor, dto.UpdateInventoryRequest{ProductID: 201, StockQuantity: qty(3)})
	require.NoError(t, err)
	_, err = uc.UpdateInventory(ctx, actor, dto.UpdateInventoryRequest{ProductID: 202, StockQuantity: qty(30)})
	require.NoError(t, err)

	items, err := uc.LowStock(ctx, actor, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(201), items[0].ProductID)
	assert.Equal(t, 3, items[0].StockQuantity)
}

func TestDecrementInTx_StockInsuficiente(t *testing.T) {
	store, uc, franchise := setup(t)
	ctx := context.Background()
	actor := domain.Actor{UserID: 3, FranchiseID: franchise.ID, Role: domain.RoleStaff}
	_, err := uc.UpdateInventory(ctx, actor, dto.UpdateInventoryRequest{ProductID: 201, StockQuantity: qty(2)})
	require.NoError(t, err)

	err = store.Run(ctx, func(invRepo repository.InventoryRepository, movRepo repository.InventoryMovementRepository) error {
		return uc.DecrementInTx(ctx, invRepo, movRepo, franchise.ID, 201, 3, 1, actor.UserID)
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	inv, err := store.Inventory().Get(ctx, franchise.ID, 201)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.StockQuantity)
}
