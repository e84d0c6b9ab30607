package dto

import "time"

// RegisterRequest entrada para registrar un usuario (password en texto, se hashea en el use case).
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"omitempty,oneof=admin manager staff"`
	FranchiseID *int64 `json:"franchiseId" validate:"omitempty,gt=0"`
}

// LoginRequest entrada para login: username o email más password.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	FranchiseID *int64     `json:"franchiseId"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
