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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, franchise_id, first_name, last_name, address, contact_number, email, created_at, updated_at`

func (r *CustomerRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.FranchiseID, &c.FirstName, &c.LastName, &c.Address, &c.ContactNumber, &c.Email,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (franchise_id, first_name, last_name, address, contact_number, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		c.FranchiseID, c.FirstName, c.LastName, c.Address, c.ContactNumber, c.Email,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("franchiseId", "la franquicia no existe")
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. ErrNotFound si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id).Scan(
		&c.ID, &c.FranchiseID, &c.FirstName, &c.LastName, &c.Address, &c.ContactNumber, &c.Email,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes por apellido y nombre. franchiseID = 0 lista todos.
func (r *CustomerRepo) List(ctx context.Context, franchiseID int64) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE ($1::bigint = 0 OR franchise_id = $1)
		ORDER BY last_name, first_name`
	return r.queryList(ctx, query, franchiseID)
}

// ListRecent últimos clientes creados.
func (r *CustomerRepo) ListRecent(ctx context.Context, franchiseID int64, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE ($1::bigint = 0 OR franchise_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	return r.queryList(ctx, query, franchiseID, limit)
}

// Update actualiza los datos de contacto. La franquicia no cambia.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET first_name = $2, last_name = $3, address = $4, contact_number = $5, email = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, c.ID, c.FirstName, c.LastName, c.Address, c.ContactNumber, c.Email).
		Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente. ErrReferencedResource si tiene pedidos.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencedResource
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
