package entity

import "time"

// Customer representa un cliente registrado en una franquicia.
type Customer struct {
	ID            int64
	FranchiseID   int64
	FirstName     string
	LastName      string
	Address       string
	ContactNumber string
	Email         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName nombre para mostrar.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
