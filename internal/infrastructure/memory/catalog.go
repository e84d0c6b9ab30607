package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

type franchiseRepo struct{ s *Store }

func (r *franchiseRepo) Create(_ context.Context, f *entity.Franchise) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.nextID()
	f.CreatedAt, f.UpdatedAt = r.s.now(), r.s.now()
	r.s.d.franchises[f.ID] = *f
	return nil
}

func (r *franchiseRepo) GetByID(_ context.Context, id int64) (*entity.Franchise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.d.franchises[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

func (r *franchiseRepo) List(_ context.Context) ([]*entity.Franchise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Franchise, 0, len(r.s.d.franchises))
	for _, f := range r.s.d.franchises {
		f := f
		out = append(out, &f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.d.users {
		if existing.Username == u.Username || strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.s.nextID()
	u.CreatedAt, u.UpdatedAt = r.s.now(), r.s.now()
	r.s.d.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.d.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByLogin(_ context.Context, login string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.d.users {
		if u.Username == login || strings.EqualFold(u.Email, login) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.d.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = &at
	r.s.d.users[id] = u
	return nil
}

type customerRepo struct{ s *Store }

func (r *customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.franchises[c.FranchiseID]; !ok {
		return domain.NewValidationError("franchiseId", "la franquicia no existe")
	}
	c.ID = r.s.nextID()
	c.CreatedAt, c.UpdatedAt = r.s.now(), r.s.now()
	r.s.d.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.d.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *customerRepo) filter(franchiseID int64) []*entity.Customer {
	out := make([]*entity.Customer, 0)
	for _, c := range r.s.d.customers {
		if franchiseID == 0 || c.FranchiseID == franchiseID {
			c := c
			out = append(out, &c)
		}
	}
	return out
}

func (r *customerRepo) List(_ context.Context, franchiseID int64) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := r.filter(franchiseID)
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *customerRepo) ListRecent(_ context.Context, franchiseID int64, limit int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := r.filter(franchiseID)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *customerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	c.UpdatedAt = r.s.now()
	r.s.d.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.customers[id]; !ok {
		return domain.ErrNotFound
	}
	for _, o := range r.s.d.orders {
		if o.CustomerID == id {
			return domain.ErrReferencedResource
		}
	}
	delete(r.s.d.customers, id)
	return nil
}

type productRepo struct{ s *Store }

// withStock completa StockQuantity con la suma del inventario. Requiere el lock tomado.
func (r *productRepo) withStock(p entity.Product) *entity.Product {
	p.StockQuantity = 0
	for k, inv := range r.s.d.inventory {
		if k.productID == p.PrCode {
			p.StockQuantity += inv.StockQuantity
		}
	}
	return &p
}

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.products[p.PrCode]; ok {
		return domain.ErrDuplicate
	}
	p.CreatedAt, p.UpdatedAt = r.s.now(), r.s.now()
	p.StockQuantity = 0
	r.s.d.products[p.PrCode] = *p
	return nil
}

func (r *productRepo) GetByID(_ context.Context, prCode int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.d.products[prCode]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.withStock(p), nil
}

func (r *productRepo) GetByIDs(_ context.Context, prCodes []int64) (map[int64]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]*entity.Product, len(prCodes))
	for _, code := range prCodes {
		if p, ok := r.s.d.products[code]; ok {
			out[code] = r.withStock(p)
		}
	}
	return out, nil
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.products[p.PrCode]; !ok {
		return domain.ErrNotFound
	}
	p.UpdatedAt = r.s.now()
	r.s.d.products[p.PrCode] = *p
	return nil
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.d.products))
	for _, p := range r.s.d.products {
		out = append(out, r.withStock(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *productRepo) Delete(_ context.Context, prCode int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.products[prCode]; !ok {
		return domain.ErrNotFound
	}
	for _, it := range r.s.d.items {
		if it.ProductID == prCode {
			return domain.ErrReferencedResource
		}
	}
	delete(r.s.d.products, prCode)
	for k := range r.s.d.inventory {
		if k.productID == prCode {
			delete(r.s.d.inventory, k)
		}
	}
	kept := r.s.d.movements[:0]
	for _, m := range r.s.d.movements {
		if m.ProductID != prCode {
			kept = append(kept, m)
		}
	}
	r.s.d.movements = kept
	return nil
}
