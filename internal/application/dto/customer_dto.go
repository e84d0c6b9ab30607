package dto

import "time"

// CreateCustomerRequest entrada para registrar un cliente. franchiseId = 0 usa la franquicia del usuario.
type CreateCustomerRequest struct {
	FranchiseID   int64   `json:"franchiseId" validate:"gte=0"`
	FirstName     string  `json:"firstName" validate:"required,max=100"`
	LastName      string  `json:"lastName" validate:"required,max=100"`
	Address       string  `json:"address" validate:"required,max=300"`
	ContactNumber string  `json:"contactNumber" validate:"required,max=30"`
	Email         *string `json:"email" validate:"omitempty,email"`
}

// UpdateCustomerRequest actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	FirstName     *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName      *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Address       *string `json:"address" validate:"omitempty,min=1,max=300"`
	ContactNumber *string `json:"contactNumber" validate:"omitempty,min=1,max=30"`
	Email         *string `json:"email" validate:"omitempty,email"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID            int64     `json:"id"`
	FranchiseID   int64     `json:"franchiseId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contactNumber"`
	Email         *string   `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
