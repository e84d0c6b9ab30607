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

var _ repository.FranchiseRepository = (*FranchiseRepo)(nil)

// FranchiseRepo implementación de FranchiseRepository sobre PostgreSQL.
type FranchiseRepo struct {
	q Querier
}

// NewFranchiseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFranchiseRepository(q Querier) *FranchiseRepo {
	return &FranchiseRepo{q: q}
}

const franchiseColumns = `id, name, address, contact_number, email, is_active, created_at, updated_at`

// Create persiste una franquicia y completa ID y timestamps.
func (r *FranchiseRepo) Create(ctx context.Context, f *entity.Franchise) error {
	query := `
		INSERT INTO franchises (name, address, contact_number, email, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, f.Name, f.Address, f.ContactNumber, f.Email, f.IsActive).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert franchise: %w", err)
	}
	return nil
}

// GetByID obtiene una franquicia. ErrNotFound si no existe.
func (r *FranchiseRepo) GetByID(ctx context.Context, id int64) (*entity.Franchise, error) {
	query := `SELECT ` + franchiseColumns + ` FROM franchises WHERE id = $1`
	var f entity.Franchise
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Address, &f.ContactNumber, &f.Email, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get franchise: %w", err)
	}
	return &f, nil
}

// List devuelve todas las franquicias ordenadas por nombre.
func (r *FranchiseRepo) List(ctx context.Context) ([]*entity.Franchise, error) {
	rows, err := r.q.Query(ctx, `SELECT `+franchiseColumns+` FROM franchises ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list franchises: %w", err)
	}
	defer rows.Close()

	var list []*entity.Franchise
	for rows.Next() {
		var f entity.Franchise
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Address, &f.ContactNumber, &f.Email, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan franchise: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
