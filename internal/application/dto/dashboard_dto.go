package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalOrders   int64           `json:"totalOrders"`
	Revenue       decimal.Decimal `json:"revenue"` // suma de finalAmount, cancelados incluidos
	Customers     int64           `json:"customers"`
	LowStockItems int64           `json:"lowStockItems"`
}
