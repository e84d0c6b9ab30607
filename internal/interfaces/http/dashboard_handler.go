package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/farmacia-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve los totales del tablero.
// GET /api/dashboard/stats?franchiseId=
//
// Respuesta: DashboardStatsDTO (totalOrders, revenue, customers, lowStockItems).
// Sin franchiseId se usa la franquicia del token; un admin sin franquicia ve el total global.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	franchiseID, err := queryID(c, "franchiseId")
	if err != nil {
		return respondError(c, err)
	}
	stats, err := h.uc.GetStats(c.UserContext(), GetActor(c), franchiseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
