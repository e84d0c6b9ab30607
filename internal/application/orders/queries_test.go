package orders_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
)

func TestListOrders_RecientesPrimero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var ids []int64
	for i := 0; i < 7; i++ {
		res, err := f.uc.CreateOrder(ctx, f.staff, f.request(item(f.ibuprofeno.PrCode, 1)))
		require.NoError(t, err)
		ids = append(ids, res.Order.ID)
	}

	all, err := f.uc.ListOrders(ctx, f.staff, 0)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, ids[6], all[0].ID)
	assert.Equal(t, "Ana Pérez", all[0].Customer.Name)
	assert.Equal(t, 1, all[0].ItemCount)

	recent, err := f.uc.ListRecentOrders(ctx, f.staff, 0, 0)
	require.NoError(t, err)
	assert.Len(t, recent, dto.DefaultRecentLimit)

	recent, err = f.uc.ListRecentOrders(ctx, f.staff, 0, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestGetOrderDetails_NoEncontrado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetOrderDetails(context.Background(), f.staff, 77)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateBill_GuardaSnapshotYGeneraPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.uc.CreateOrder(ctx, f.staff, f.request(item(f.paracetamol.PrCode, 2), item(f.ibuprofeno.PrCode, 1)))
	require.NoError(t, err)

	pdf, filename, err := f.uc.BillPDF(ctx, f.staff, res.Order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "factura-"+res.Order.OrderNumber+".pdf", filename)
	require.NotNil(t, f.renderer.last)
	assert.Len(t, f.renderer.last.Items, 2)
	assert.Equal(t, "Centro", f.renderer.last.Franchise.Name)

	stored, err := f.store.Orders().GetByID(ctx, res.Order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.BillGeneratedAt)
	var snapshot dto.BillDTO
	require.NoError(t, json.Unmarshal(stored.BillData, &snapshot))
	assert.Equal(t, res.Order.OrderNumber, snapshot.OrderNumber)
	assert.True(t, snapshot.Totals.Final.Equal(res.Order.FinalAmount))
}
