package memory

import (
	"context"

	"github.com/shopspring/decimal"
)

type analyticsRepo struct{ s *Store }

func (r *analyticsRepo) CountOrders(_ context.Context, franchiseID int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, o := range r.s.d.orders {
		if franchiseID == 0 || o.FranchiseID == franchiseID {
			n++
		}
	}
	return n, nil
}

func (r *analyticsRepo) SumRevenue(_ context.Context, franchiseID int64) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, o := range r.s.d.orders {
		if franchiseID == 0 || o.FranchiseID == franchiseID {
			sum = sum.Add(o.FinalAmount)
		}
	}
	return sum, nil
}

func (r *analyticsRepo) CountCustomers(_ context.Context, franchiseID int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, c := range r.s.d.customers {
		if franchiseID == 0 || c.FranchiseID == franchiseID {
			n++
		}
	}
	return n, nil
}

func (r *analyticsRepo) CountLowStock(_ context.Context, franchiseID int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for k, inv := range r.s.d.inventory {
		if franchiseID != 0 && k.franchiseID != franchiseID {
			continue
		}
		if p, ok := r.s.d.products[k.productID]; ok && inv.StockQuantity <= p.LowStockThreshold {
			n++
		}
	}
	return n, nil
}
