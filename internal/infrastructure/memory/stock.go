package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

type inventoryRepo struct{ s *Store }

func (r *inventoryRepo) Get(_ context.Context, franchiseID, productID int64) (*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.d.inventory[inventoryKey{franchiseID, productID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inv, nil
}

// GetForUpdate equivale a Get: las transacciones ya están serializadas.
func (r *inventoryRepo) GetForUpdate(ctx context.Context, franchiseID, productID int64) (*entity.Inventory, error) {
	return r.Get(ctx, franchiseID, productID)
}

func (r *inventoryRepo) Upsert(_ context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if inv.StockQuantity < 0 {
		return domain.NewValidationError("stockQuantity", "debe ser mayor o igual a 0")
	}
	if _, ok := r.s.d.products[inv.ProductID]; !ok {
		return domain.ErrNotFound
	}
	key := inventoryKey{inv.FranchiseID, inv.ProductID}
	now := r.s.now()
	if existing, ok := r.s.d.inventory[key]; ok {
		inv.ID, inv.CreatedAt = existing.ID, existing.CreatedAt
	} else {
		inv.ID, inv.CreatedAt = r.s.nextID(), now
	}
	inv.UpdatedAt = now
	r.s.d.inventory[key] = *inv
	return nil
}

func (r *inventoryRepo) Decrement(_ context.Context, franchiseID, productID int64, qty int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := inventoryKey{franchiseID, productID}
	inv, ok := r.s.d.inventory[key]
	if !ok || inv.StockQuantity < qty {
		return 0, domain.ErrInsufficientStock
	}
	inv.StockQuantity -= qty
	inv.UpdatedAt = r.s.now()
	r.s.d.inventory[key] = inv
	return inv.StockQuantity, nil
}

func (r *inventoryRepo) Increment(_ context.Context, franchiseID, productID int64, qty int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := inventoryKey{franchiseID, productID}
	now := r.s.now()
	inv, ok := r.s.d.inventory[key]
	if !ok {
		inv = entity.Inventory{ID: r.s.nextID(), FranchiseID: franchiseID, ProductID: productID, CreatedAt: now}
	}
	inv.StockQuantity += qty
	inv.UpdatedAt = now
	r.s.d.inventory[key] = inv
	return inv.StockQuantity, nil
}

func (r *inventoryRepo) List(_ context.Context, franchiseID int64) ([]*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Inventory, 0)
	for k, inv := range r.s.d.inventory {
		if franchiseID == 0 || k.franchiseID == franchiseID {
			inv := inv
			out = append(out, &inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FranchiseID != out[j].FranchiseID {
			return out[i].FranchiseID < out[j].FranchiseID
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}

func (r *inventoryRepo) ListLowStock(_ context.Context, franchiseID int64, limit int) ([]entity.LowStockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.LowStockItem, 0)
	for k, inv := range r.s.d.inventory {
		if franchiseID != 0 && k.franchiseID != franchiseID {
			continue
		}
		p, ok := r.s.d.products[k.productID]
		if !ok || inv.StockQuantity > p.LowStockThreshold {
			continue
		}
		out = append(out, entity.LowStockItem{
			FranchiseID:       inv.FranchiseID,
			ProductID:         inv.ProductID,
			ProductName:       p.Name,
			Packing:           p.Packing,
			Manufacturer:      p.Manufacturer,
			StockQuantity:     inv.StockQuantity,
			LowStockThreshold: p.LowStockThreshold,
			UpdatedAt:         inv.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StockQuantity != out[j].StockQuantity {
			return out[i].StockQuantity < out[j].StockQuantity
		}
		return out[i].ProductName < out[j].ProductName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = r.s.nextID()
	m.CreatedAt = r.s.now()
	r.s.d.movements = append(r.s.d.movements, *m)
	return nil
}

func (r *movementRepo) List(_ context.Context, franchiseID, productID int64, limit int) ([]*entity.InventoryMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.InventoryMovement, 0)
	for i := len(r.s.d.movements) - 1; i >= 0; i-- {
		m := r.s.d.movements[i]
		if franchiseID != 0 && m.FranchiseID != franchiseID {
			continue
		}
		if productID != 0 && m.ProductID != productID {
			continue
		}
		out = append(out, &m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
