package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// List ordena por apellido y nombre. franchiseID = 0 lista todos.
	List(ctx context.Context, franchiseID int64) ([]*entity.Customer, error)
	// ListRecent ordena por fecha de creación descendente.
	ListRecent(ctx context.Context, franchiseID int64, limit int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}
