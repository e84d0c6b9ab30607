package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// FranchiseRepository define el puerto de persistencia para Franchise (DIP).
// La implementación vive en infrastructure.
type FranchiseRepository interface {
	Create(ctx context.Context, franchise *entity.Franchise) error
	GetByID(ctx context.Context, id int64) (*entity.Franchise, error)
	List(ctx context.Context) ([]*entity.Franchise, error)
}
