// Package memory implementa los puertos de persistencia sobre estructuras en memoria.
// Las transacciones se serializan y se revierten restaurando una copia del estado.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)
var _ orders.OrderTxRunner = (*Store)(nil)

type inventoryKey struct {
	franchiseID int64
	productID   int64
}

type data struct {
	franchises map[int64]entity.Franchise
	users      map[int64]entity.User
	customers  map[int64]entity.Customer
	products   map[int64]entity.Product
	inventory  map[inventoryKey]entity.Inventory
	movements  []entity.InventoryMovement
	orders     map[int64]entity.Order
	items      []entity.OrderItem
	seq        int64
}

func newData() data {
	return data{
		franchises: map[int64]entity.Franchise{},
		users:      map[int64]entity.User{},
		customers:  map[int64]entity.Customer{},
		products:   map[int64]entity.Product{},
		inventory:  map[inventoryKey]entity.Inventory{},
		orders:     map[int64]entity.Order{},
	}
}

func (d data) clone() data {
	c := newData()
	for k, v := range d.franchises {
		c.franchises[k] = v
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.customers {
		c.customers[k] = v
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.inventory {
		c.inventory[k] = v
	}
	for k, v := range d.orders {
		c.orders[k] = v
	}
	c.movements = append([]entity.InventoryMovement(nil), d.movements...)
	c.items = append([]entity.OrderItem(nil), d.items...)
	c.seq = d.seq
	return c
}

// Store guarda todas las tablas. Es seguro para uso concurrente.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	d    data
	now  func() time.Time
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{d: newData(), now: time.Now}
}

func (s *Store) nextID() int64 {
	s.d.seq++
	return s.d.seq
}

// withTx serializa transacciones y restaura el estado previo si fn falla.
func (s *Store) withTx(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.d.clone()
	s.mu.RUnlock()

	if err := fn(); err != nil {
		s.mu.Lock()
		s.d = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Run implementa inventory.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return s.withTx(ctx, func() error {
		return fn(s.Inventory(), s.Movements())
	})
}

// RunOrder implementa orders.OrderTxRunner.
func (s *Store) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return s.withTx(ctx, func() error {
		return fn(s.Orders(), s.Inventory(), s.Movements())
	})
}

// Repositorios.

func (s *Store) Franchises() repository.FranchiseRepository { return &franchiseRepo{s} }
func (s *Store) Users() repository.UserRepository           { return &userRepo{s} }
func (s *Store) Customers() repository.CustomerRepository   { return &customerRepo{s} }
func (s *Store) Products() repository.ProductRepository     { return &productRepo{s} }
func (s *Store) Inventory() repository.InventoryRepository  { return &inventoryRepo{s} }
func (s *Store) Movements() repository.InventoryMovementRepository {
	return &movementRepo{s}
}
func (s *Store) Orders() repository.OrderRepository       { return &orderRepo{s} }
func (s *Store) Analytics() repository.AnalyticsRepository { return &analyticsRepo{s} }

// OrderItemCount número de líneas persistidas de un pedido.
func (s *Store) OrderItemCount(orderID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.d.items {
		if it.OrderID == orderID {
			n++
		}
	}
	return n
}

// OrderCount número total de pedidos.
func (s *Store) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.d.orders)
}

// InventoryRowCount número de filas de inventario.
func (s *Store) InventoryRowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.d.inventory)
}
