package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `o.id, o.order_number, o.franchise_id, o.customer_id, o.status, o.total_amount, o.discount_amount,
	o.tax_amount, o.final_amount, o.bill_data, o.bill_generated_at, o.notes, o.idempotency_key, o.created_by,
	o.created_at, o.updated_at`

func orderScanTargets(o *entity.Order) []any {
	return []any{
		&o.ID, &o.OrderNumber, &o.FranchiseID, &o.CustomerID, &o.Status, &o.TotalAmount, &o.DiscountAmount,
		&o.TaxAmount, &o.FinalAmount, &o.BillData, &o.BillGeneratedAt, &o.Notes, &o.IdempotencyKey, &o.CreatedBy,
		&o.CreatedAt, &o.UpdatedAt,
	}
}

func (r *OrderRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Order, error) {
	var o entity.Order
	if err := r.q.QueryRow(ctx, query, args...).Scan(orderScanTargets(&o)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Create inserta la cabecera del pedido y completa ID y timestamps.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (order_number, franchise_id, customer_id, status, total_amount, discount_amount,
		                    tax_amount, final_amount, notes, idempotency_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		o.OrderNumber, o.FranchiseID, o.CustomerID, o.Status, o.TotalAmount, o.DiscountAmount,
		o.TaxAmount, o.FinalAmount, o.Notes, o.IdempotencyKey, o.CreatedBy,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isUniqueViolationOn(err, constraintOrdersIdempotency) {
			return domain.ErrDuplicateRequest
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem inserta una línea del pedido.
func (r *OrderRepo) CreateItem(ctx context.Context, it *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, discount, tax_rate, tax_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Discount, it.TaxRate, it.TaxAmount, it.TotalAmount,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido. ErrNotFound si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
}

// GetForUpdate obtiene el pedido y bloquea la fila hasta el fin de la transacción.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1 FOR UPDATE`, id)
}

// GetByIdempotencyKey busca un pedido ya creado con la misma clave en la franquicia.
func (r *OrderRepo) GetByIdempotencyKey(ctx context.Context, franchiseID int64, key string) (*entity.Order, error) {
	return r.getOne(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.franchise_id = $1 AND o.idempotency_key = $2`,
		franchiseID, key)
}

// GetItems líneas del pedido con nombre, presentación y fabricante del producto.
func (r *OrderRepo) GetItems(ctx context.Context, orderID int64) ([]entity.OrderItemDetail, error) {
	query := `
		SELECT it.id, it.order_id, it.product_id, it.quantity, it.unit_price, it.discount, it.tax_rate,
		       it.tax_amount, it.total_amount, it.created_at, it.updated_at,
		       p.name, p.packing, p.manufacturer
		FROM order_items it
		JOIN products    p ON p.pr_code = it.product_id
		WHERE it.order_id = $1
		ORDER BY it.id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItemDetail
	for rows.Next() {
		var d entity.OrderItemDetail
		if err := rows.Scan(
			&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Discount, &d.TaxRate,
			&d.TaxAmount, &d.TotalAmount, &d.CreatedAt, &d.UpdatedAt,
			&d.ProductName, &d.ProductPacking, &d.ProductManufacturer,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado y refresca updated_at.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	query := `
		UPDATE orders o SET status = $2, updated_at = now()
		WHERE o.id = $1
		RETURNING ` + orderColumns
	return r.getOne(ctx, query, id, status)
}

// SaveBill guarda el snapshot de la factura.
func (r *OrderRepo) SaveBill(ctx context.Context, id int64, bill json.RawMessage, generatedAt time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET bill_data = $2, bill_generated_at = $3, updated_at = now() WHERE id = $1`,
		id, bill, generatedAt)
	if err != nil {
		return fmt.Errorf("save bill: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List pedidos con resumen del cliente, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, franchiseID int64, limit int) ([]entity.OrderSummary, error) {
	query := `
		SELECT ` + orderColumns + `,
		       c.first_name, c.last_name, c.email, c.contact_number,
		       (SELECT COUNT(*) FROM order_items it WHERE it.order_id = o.id)::int
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE ($1::bigint = 0 OR o.franchise_id = $1)
		ORDER BY o.created_at DESC, o.id DESC`
	args := []any{franchiseID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []entity.OrderSummary
	for rows.Next() {
		var s entity.OrderSummary
		targets := append(orderScanTargets(&s.Order),
			&s.CustomerFirstName, &s.CustomerLastName, &s.CustomerEmail, &s.CustomerContact, &s.ItemCount)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
