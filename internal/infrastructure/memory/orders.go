package memory

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

type orderRepo struct{ s *Store }

func (r *orderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.d.orders {
		if o.IdempotencyKey != nil && existing.IdempotencyKey != nil &&
			existing.FranchiseID == o.FranchiseID && *existing.IdempotencyKey == *o.IdempotencyKey {
			return domain.ErrDuplicateRequest
		}
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.d.customers[o.CustomerID]; !ok {
		return domain.NewValidationError("order.customerId", "el cliente no existe")
	}
	o.ID = r.s.nextID()
	o.CreatedAt, o.UpdatedAt = r.s.now(), r.s.now()
	r.s.d.orders[o.ID] = *o
	return nil
}

func (r *orderRepo) CreateItem(_ context.Context, it *entity.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.orders[it.OrderID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.d.products[it.ProductID]; !ok {
		return domain.ErrNotFound
	}
	it.ID = r.s.nextID()
	it.CreatedAt, it.UpdatedAt = r.s.now(), r.s.now()
	r.s.d.items = append(r.s.d.items, *it)
	return nil
}

func (r *orderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.d.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

// GetForUpdate equivale a GetByID: las transacciones ya están serializadas.
func (r *orderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *orderRepo) GetByIdempotencyKey(_ context.Context, franchiseID int64, key string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.d.orders {
		if o.FranchiseID == franchiseID && o.IdempotencyKey != nil && *o.IdempotencyKey == key {
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *orderRepo) GetItems(_ context.Context, orderID int64) ([]entity.OrderItemDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.OrderItemDetail, 0)
	for _, it := range r.s.d.items {
		if it.OrderID != orderID {
			continue
		}
		p := r.s.d.products[it.ProductID]
		out = append(out, entity.OrderItemDetail{
			OrderItem:           it,
			ProductName:         p.Name,
			ProductPacking:      p.Packing,
			ProductManufacturer: p.Manufacturer,
		})
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.d.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = r.s.now()
	r.s.d.orders[id] = o
	return &o, nil
}

func (r *orderRepo) SaveBill(_ context.Context, id int64, bill json.RawMessage, generatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.d.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.BillData = append(json.RawMessage(nil), bill...)
	o.BillGeneratedAt = &generatedAt
	o.UpdatedAt = r.s.now()
	r.s.d.orders[id] = o
	return nil
}

func (r *orderRepo) List(_ context.Context, franchiseID int64, limit int) ([]entity.OrderSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.OrderSummary, 0)
	for _, o := range r.s.d.orders {
		if franchiseID != 0 && o.FranchiseID != franchiseID {
			continue
		}
		c := r.s.d.customers[o.CustomerID]
		count := 0
		for _, it := range r.s.d.items {
			if it.OrderID == o.ID {
				count++
			}
		}
		out = append(out, entity.OrderSummary{
			Order:             o,
			CustomerFirstName: c.FirstName,
			CustomerLastName:  c.LastName,
			CustomerEmail:     c.Email,
			CustomerContact:   c.ContactNumber,
			ItemCount:         count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
