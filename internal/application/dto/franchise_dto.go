package dto

import "time"

// CreateFranchiseRequest entrada para crear una franquicia (solo admin).
type CreateFranchiseRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Address       string `json:"address" validate:"required,max=300"`
	ContactNumber string `json:"contactNumber" validate:"required,max=30"`
	Email         string `json:"email" validate:"required,email"`
	IsActive      *bool  `json:"isActive"`
}

// FranchiseResponse salida de una franquicia.
type FranchiseResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contactNumber"`
	Email         string    `json:"email"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
