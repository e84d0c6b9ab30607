package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (franchise_id, product_id, type, quantity, resulting_quantity, order_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.FranchiseID, m.ProductID, m.Type, m.Quantity, m.ResultingQuantity, m.OrderID, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

// List movimientos de una franquicia, más recientes primero.
func (r *InventoryMovementRepo) List(ctx context.Context, franchiseID, productID int64, limit int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, franchise_id, product_id, type, quantity, resulting_quantity, order_id, created_by, created_at
		FROM inventory_movements
		WHERE ($1::bigint = 0 OR franchise_id = $1)
		  AND ($2::bigint = 0 OR product_id = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, franchiseID, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.FranchiseID, &m.ProductID, &m.Type, &m.Quantity, &m.ResultingQuantity,
			&m.OrderID, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
