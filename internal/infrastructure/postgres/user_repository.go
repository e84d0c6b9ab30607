package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, first_name, last_name, username, password_hash, email, role, franchise_id, is_active, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash, &u.Email, &u.Role,
		&u.FranchiseID, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario. ErrDuplicate si username o email ya existen.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (first_name, last_name, username, password_hash, email, role, franchise_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Username, u.PasswordHash, u.Email, u.Role, u.FranchiseID, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("franchiseId", "la franquicia no existe")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. ErrUserNotFound si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByLogin busca por username o email (sin distinguir mayúsculas en el email).
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR lower(email) = lower($1) LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

// UpdateLastLogin registra la fecha del último inicio de sesión.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
