package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and orders.OrderTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ orders.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// withTx inicia la transacción, ejecuta fn y hace Commit; cualquier error deja Rollback.
func (r *TxRunner) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run ejecuta fn con repos de inventario atados a la tx (ajustes manuales).
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		return fn(NewInventoryRepository(tx), NewInventoryMovementRepository(tx))
	})
}

// RunOrder ejecuta fn con repos de pedidos e inventario en la misma tx (creación y cambio de estado).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		return fn(NewOrderRepository(tx), NewInventoryRepository(tx), NewInventoryMovementRepository(tx))
	})
}
