package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
)

// fakeRenderer devuelve un PDF mínimo y recuerda la última factura recibida.
type fakeRenderer struct {
	last *dto.BillDTO
}

func (r *fakeRenderer) RenderBill(_ context.Context, bill *dto.BillDTO) ([]byte, error) {
	r.last = bill
	return []byte("%PDF-1.4 fake"), nil
}

type fixture struct {
	store       *memory.Store
	uc          *orders.OrderUseCase
	renderer    *fakeRenderer
	franchise   *entity.Franchise
	customer    *entity.Customer
	paracetamol *entity.Product
	ibuprofeno  *entity.Product
	staff       domain.Actor
	admin       domain.Actor
}

// newFixture: una franquicia activa con un cliente y dos productos con stock 10.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	franchise := &entity.Franchise{Name: "Centro", Address: "Calle 1", ContactNumber: "555-0100", Email: "centro@farmacia.test", IsActive: true}
	require.NoError(t, store.Franchises().Create(ctx, franchise))

	customer := &entity.Customer{FranchiseID: franchise.ID, FirstName: "Ana", LastName: "Pérez", Address: "Calle 2", ContactNumber: "555-0200"}
	require.NoError(t, store.Customers().Create(ctx, customer))

	paracetamol := &entity.Product{
		PrCode: 101, Category: "Analgésico", Manufacturer: "Genfar", Name: "Paracetamol 500mg",
		Packing: "10x10", MRP: decimal.NewFromInt(50), CasePack: 1, GST: decimal.NewFromInt(12),
		Supplier: "Distri", LowStockThreshold: 5,
	}
	ibuprofeno := &entity.Product{
		PrCode: 102, Category: "Antiinflamatorio", Manufacturer: "MK", Name: "Ibuprofeno 400mg",
		Packing: "10x3", MRP: decimal.NewFromInt(20), CasePack: 1, GST: decimal.Zero,
		Supplier: "Distri", LowStockThreshold: 5,
	}
	require.NoError(t, store.Products().Create(ctx, paracetamol))
	require.NoError(t, store.Products().Create(ctx, ibuprofeno))
	for _, p := range []*entity.Product{paracetamol, ibuprofeno} {
		require.NoError(t, store.Inventory().Upsert(ctx, &entity.Inventory{
			FranchiseID: franchise.ID, ProductID: p.PrCode, StockQuantity: 10,
		}))
	}

	invUC := inventory.NewInventoryUseCase(store, store.Inventory(), store.Movements(), store.Products(), store.Franchises())
	renderer := &fakeRenderer{}
	uc := orders.NewOrderUseCase(store, invUC, store.Orders(), store.Customers(), store.Products(), store.Franchises(),
		renderer, orders.Config{NumberPrefix: "TST"})

	return &fixture{
		store:       store,
		uc:          uc,
		renderer:    renderer,
		franchise:   franchise,
		customer:    customer,
		paracetamol: paracetamol,
		ibuprofeno:  ibuprofeno,
		staff:       domain.Actor{UserID: 7, FranchiseID: franchise.ID, Role: domain.RoleStaff},
		admin:       domain.Actor{UserID: 1, Role: domain.RoleAdmin},
	}
}

func (f *fixture) stock(t *testing.T, productID int64) int {
	t.Helper()
	inv, err := f.store.Inventory().Get(context.Background(), f.franchise.ID, productID)
	require.NoError(t, err)
	return inv.StockQuantity
}

func (f *fixture) request(items ...dto.OrderItemInput) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Order: dto.OrderHeaderInput{CustomerID: f.customer.ID},
		Items: items,
	}
}

func item(productID int64, qty int) dto.OrderItemInput {
	return dto.OrderItemInput{ProductID: productID, Quantity: qty}
}
