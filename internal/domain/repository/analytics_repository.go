package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository define las consultas de lectura del dashboard.
// franchiseID = 0 agrega sobre todas las franquicias. Todas devuelven cero sobre tablas vacías.
type AnalyticsRepository interface {
	// CountOrders número de pedidos (incluye cancelados).
	CountOrders(ctx context.Context, franchiseID int64) (int64, error)

	// SumRevenue suma de final_amount de los pedidos.
	SumRevenue(ctx context.Context, franchiseID int64) (decimal.Decimal, error)

	CountCustomers(ctx context.Context, franchiseID int64) (int64, error)

	// CountLowStock filas de inventario con stock en o bajo el umbral del producto.
	CountLowStock(ctx context.Context, franchiseID int64) (int64, error)
}
