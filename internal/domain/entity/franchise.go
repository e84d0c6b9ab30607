package entity

import "time"

// Franchise representa una sucursal/tenant de la farmacia. Agrupa clientes, usuarios, pedidos e inventario.
type Franchise struct {
	ID            int64
	Name          string
	Address       string
	ContactNumber string
	Email         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
