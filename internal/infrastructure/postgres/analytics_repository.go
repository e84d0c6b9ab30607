package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) count(ctx context.Context, op, query string, franchiseID int64) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, franchiseID).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.%s: %w", op, err)
	}
	return n, nil
}

// CountOrders total de pedidos, cancelados incluidos.
func (r *AnalyticsRepo) CountOrders(ctx context.Context, franchiseID int64) (int64, error) {
	const query = `
	SELECT COALESCE(COUNT(*), 0)
	FROM orders
	WHERE ($1::bigint = 0 OR franchise_id = $1)`
	return r.count(ctx, "CountOrders", query, franchiseID)
}

// SumRevenue suma de final_amount. COALESCE devuelve cero si no hay pedidos.
func (r *AnalyticsRepo) SumRevenue(ctx context.Context, franchiseID int64) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(final_amount), 0)
	FROM orders
	WHERE ($1::bigint = 0 OR franchise_id = $1)`
	var revenue decimal.Decimal
	if err := r.q.QueryRow(ctx, query, franchiseID).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumRevenue: %w", err)
	}
	return revenue, nil
}

// CountCustomers total de clientes.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context, franchiseID int64) (int64, error) {
	const query = `
	SELECT COALESCE(COUNT(*), 0)
	FROM customers
	WHERE ($1::bigint = 0 OR franchise_id = $1)`
	return r.count(ctx, "CountCustomers", query, franchiseID)
}

// CountLowStock filas de inventario en o bajo el umbral de su producto.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, franchiseID int64) (int64, error) {
	const query = `
	SELECT COALESCE(COUNT(*), 0)
	FROM inventory i
	JOIN products  p ON p.pr_code = i.product_id
	WHERE ($1::bigint = 0 OR i.franchise_id = $1)
	  AND i.stock_quantity <= p.low_stock_threshold`
	return r.count(ctx, "CountLowStock", query, franchiseID)
}
