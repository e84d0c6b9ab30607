package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, franchise_id, product_id, stock_quantity, created_at, updated_at`

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := row.Scan(
		&inv.ID, &inv.FranchiseID, &inv.ProductID, &inv.StockQuantity, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Get obtiene el stock de un producto en una franquicia. ErrNotFound si no hay fila.
func (r *InventoryRepo) Get(ctx context.Context, franchiseID, productID int64) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE franchise_id = $1 AND product_id = $2`
	inv, err := scanInventory(r.q.QueryRow(ctx, query, franchiseID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, franchiseID, productID int64) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE franchise_id = $1 AND product_id = $2 FOR UPDATE`
	inv, err := scanInventory(r.q.QueryRow(ctx, query, franchiseID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return inv, nil
}

// Upsert inserta o fija la cantidad en stock (por franquicia y producto).
func (r *InventoryRepo) Upsert(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (franchise_id, product_id, stock_quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (franchise_id, product_id)
		DO UPDATE SET stock_quantity = EXCLUDED.stock_quantity, updated_at = now()
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, inv.FranchiseID, inv.ProductID, inv.StockQuantity).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.NewValidationError("stockQuantity", "no puede ser negativo")
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// Decrement descuenta qty de forma atómica: la condición stock_quantity >= qty impide stock negativo
// aun con pedidos concurrentes sobre el mismo producto.
func (r *InventoryRepo) Decrement(ctx context.Context, franchiseID, productID int64, qty int) (int, error) {
	query := `
		UPDATE inventory SET stock_quantity = stock_quantity - $3, updated_at = now()
		WHERE franchise_id = $1 AND product_id = $2 AND stock_quantity >= $3
		RETURNING stock_quantity`
	var remaining int
	err := r.q.QueryRow(ctx, query, franchiseID, productID, qty).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("decrement inventory: %w", err)
	}
	return remaining, nil
}

// Increment suma qty al stock, creando la fila si no existe.
func (r *InventoryRepo) Increment(ctx context.Context, franchiseID, productID int64, qty int) (int, error) {
	query := `
		INSERT INTO inventory (franchise_id, product_id, stock_quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (franchise_id, product_id)
		DO UPDATE SET stock_quantity = inventory.stock_quantity + EXCLUDED.stock_quantity, updated_at = now()
		RETURNING stock_quantity`
	var total int
	if err := r.q.QueryRow(ctx, query, franchiseID, productID, qty).Scan(&total); err != nil {
		if isOutOfRange(err) {
			return 0, domain.NewValidationError("stockQuantity", "el stock resultante supera el máximo permitido")
		}
		return 0, fmt.Errorf("increment inventory: %w", err)
	}
	return total, nil
}

// List inventario de una franquicia (0 = todas) ordenado por franquicia y producto.
func (r *InventoryRepo) List(ctx context.Context, franchiseID int64) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory
		WHERE ($1::bigint = 0 OR franchise_id = $1)
		ORDER BY franchise_id, product_id`
	rows, err := r.q.Query(ctx, query, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// ListLowStock filas en o bajo el umbral del producto, de menor a mayor stock.
func (r *InventoryRepo) ListLowStock(ctx context.Context, franchiseID int64, limit int) ([]entity.LowStockItem, error) {
	query := `
		SELECT i.franchise_id, i.product_id, p.name, p.packing, p.manufacturer,
		       i.stock_quantity, p.low_stock_threshold, i.updated_at
		FROM inventory i
		JOIN products  p ON p.pr_code = i.product_id
		WHERE ($1::bigint = 0 OR i.franchise_id = $1)
		  AND i.stock_quantity <= p.low_stock_threshold
		ORDER BY i.stock_quantity ASC, p.name
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, franchiseID, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []entity.LowStockItem
	for rows.Next() {
		var it entity.LowStockItem
		if err := rows.Scan(
			&it.FranchiseID, &it.ProductID, &it.ProductName, &it.Packing, &it.Manufacturer,
			&it.StockQuantity, &it.LowStockThreshold, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
