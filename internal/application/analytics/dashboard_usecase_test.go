package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/domain"
)

// ─── Fake ────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	orders, customers, lowStock map[int64]int64
	revenue                     map[int64]decimal.Decimal
	err                         error
}

func (f *fakeAnalyticsRepo) sumCount(m map[int64]int64, fid int64) int64 {
	if fid != 0 {
		return m[fid]
	}
	var total int64
	for _, n := range m {
		total += n
	}
	return total
}

func (f *fakeAnalyticsRepo) CountOrders(_ context.Context, fid int64) (int64, error) {
	return f.sumCount(f.orders, fid), f.err
}

func (f *fakeAnalyticsRepo) SumRevenue(_ context.Context, fid int64) (decimal.Decimal, error) {
	if fid != 0 {
		return f.revenue[fid], f.err
	}
	total := decimal.Zero
	for _, r := range f.revenue {
		total = total.Add(r)
	}
	return total, f.err
}

func (f *fakeAnalyticsRepo) CountCustomers(_ context.Context, fid int64) (int64, error) {
	return f.sumCount(f.customers, fid), f.err
}

func (f *fakeAnalyticsRepo) CountLowStock(_ context.Context, fid int64) (int64, error) {
	return f.sumCount(f.lowStock, fid), f.err
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestGetStats_SinDatosDevuelveCeros(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{})

	stats, err := uc.GetStats(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleAdmin}, 0)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.Revenue.IsZero())
	assert.Zero(t, stats.Customers)
	assert.Zero(t, stats.LowStockItems)
}

func TestGetStats_FiltraPorFranquicia(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		orders:    map[int64]int64{1: 3, 2: 5},
		customers: map[int64]int64{1: 2, 2: 7},
		lowStock:  map[int64]int64{1: 1},
		revenue: map[int64]decimal.Decimal{
			1: decimal.RequireFromString("150.50"),
			2: decimal.RequireFromString("99.50"),
		},
	}
	uc := NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleAdmin}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.Customers)
	assert.Equal(t, int64(1), stats.LowStockItems)
	assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("150.50")))

	all, err := uc.GetStats(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleAdmin}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(8), all.TotalOrders)
	assert.True(t, all.Revenue.Equal(decimal.NewFromInt(250)))
}

func TestGetStats_StaffSoloVeSuFranquicia(t *testing.T) {
	repo := &fakeAnalyticsRepo{orders: map[int64]int64{1: 3, 2: 5}}
	uc := NewDashboardUseCase(repo)
	staff := domain.Actor{UserID: 9, FranchiseID: 2, Role: domain.RoleStaff}

	stats, err := uc.GetStats(context.Background(), staff, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalOrders)

	_, err = uc.GetStats(context.Background(), staff, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetStats_PropagaError(t *testing.T) {
	boom := errors.New("db caída")
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{err: boom})

	_, err := uc.GetStats(context.Background(), domain.Actor{Role: domain.RoleAdmin}, 0)
	assert.ErrorIs(t, err, boom)
}
