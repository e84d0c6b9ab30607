package repository

import (
	"context"
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create ErrDuplicate si username o email ya existen.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByLogin busca por username o email.
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}
