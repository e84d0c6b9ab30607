// Package analytics contiene los casos de uso de lectura del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats devuelve totales de pedidos, ingresos, clientes y filas con bajo stock.
// franchiseID = 0 agrega sobre todas las franquicias (solo actores sin franquicia).
//
// Cuatro consultas en paralelo; sobre tablas vacías todas devuelven cero.
func (uc *DashboardUseCase) GetStats(ctx context.Context, actor domain.Actor, franchiseID int64) (*dto.DashboardStatsDTO, error) {
	fid, err := actor.ResolveFranchise(franchiseID)
	if err != nil {
		return nil, err
	}

	type countResult struct {
		n   int64
		err error
	}
	type revenueResult struct {
		revenue decimal.Decimal
		err     error
	}

	ordersCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)
	customersCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountOrders(ctx, fid)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		rev, err := uc.analyticsRepo.SumRevenue(ctx, fid)
		revenueCh <- revenueResult{rev, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCustomers(ctx, fid)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx, fid)
		lowStockCh <- countResult{n, err}
	}()

	orders := <-ordersCh
	revenue := <-revenueCh
	customers := <-customersCh
	lowStock := <-lowStockCh

	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", orders.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", revenue.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: bajo stock: %w", lowStock.err)
	}

	return &dto.DashboardStatsDTO{
		TotalOrders:   orders.n,
		Revenue:       revenue.revenue.Round(2),
		Customers:     customers.n,
		LowStockItems: lowStock.n,
	}, nil
}
