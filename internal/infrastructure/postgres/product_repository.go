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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// productSelect incluye el stock total derivado del inventario de todas las franquicias.
const productSelect = `
	SELECT p.pr_code, p.category, p.manufacturer, p.name, p.packing, p.mrp, p.case_pack, p.composition,
	       p.gst, p.discount, p.expiry_date, p.prescription_required, p.supplier, p.low_stock_threshold,
	       COALESCE((SELECT SUM(i.stock_quantity) FROM inventory i WHERE i.product_id = p.pr_code), 0)::int,
	       p.created_at, p.updated_at
	FROM products p`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.PrCode, &p.Category, &p.Manufacturer, &p.Name, &p.Packing, &p.MRP, &p.CasePack, &p.Composition,
		&p.GST, &p.Discount, &p.ExpiryDate, &p.PrescriptionRequired, &p.Supplier, &p.LowStockThreshold,
		&p.StockQuantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. ErrDuplicate si el código ya existe.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (pr_code, category, manufacturer, name, packing, mrp, case_pack, composition,
		                      gst, discount, expiry_date, prescription_required, supplier, low_stock_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.PrCode, p.Category, p.Manufacturer, p.Name, p.Packing, p.MRP, p.CasePack, p.Composition,
		p.GST, p.Discount, p.ExpiryDate, p.PrescriptionRequired, p.Supplier, p.LowStockThreshold,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por código. ErrNotFound si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, prCode int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.pr_code = $1`, prCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDs obtiene varios productos en una sola consulta. Los códigos inexistentes no aparecen en el mapa.
func (r *ProductRepo) GetByIDs(ctx context.Context, prCodes []int64) (map[int64]*entity.Product, error) {
	out := make(map[int64]*entity.Product, len(prCodes))
	if len(prCodes) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, productSelect+` WHERE p.pr_code = ANY($1)`, prCodes)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out[p.PrCode] = p
	}
	return out, rows.Err()
}

// Update actualiza los datos de catálogo. El stock se maneja vía inventario.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET category = $2, manufacturer = $3, name = $4, packing = $5, mrp = $6, case_pack = $7,
		       composition = $8, gst = $9, discount = $10, expiry_date = $11, prescription_required = $12,
		       supplier = $13, low_stock_threshold = $14, updated_at = now()
		WHERE pr_code = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		p.PrCode, p.Category, p.Manufacturer, p.Name, p.Packing, p.MRP, p.CasePack, p.Composition,
		p.GST, p.Discount, p.ExpiryDate, p.PrescriptionRequired, p.Supplier, p.LowStockThreshold,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista el catálogo por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY p.name, p.pr_code`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto y su inventario. ErrReferencedResource si aparece en pedidos.
func (r *ProductRepo) Delete(ctx context.Context, prCode int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE pr_code = $1`, prCode)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencedResource
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
