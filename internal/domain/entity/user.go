package entity

import "time"

// User representa un usuario del personal de farmacia. FranchiseID nil = administrador central.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	Role         string // admin, manager, staff
	FranchiseID  *int64
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FranchiseIDOrZero devuelve la franquicia del usuario o 0 si no tiene.
func (u *User) FranchiseIDOrZero() int64 {
	if u.FranchiseID == nil {
		return 0
	}
	return *u.FranchiseID
}
