package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
)

// InventoryHandler maneja el inventario por franquicia y su historial de movimientos.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Inventario por franquicia
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        franchiseId  query  int  false  "Franquicia (solo admin)"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	franchiseID, err := queryID(c, "franchiseId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), franchiseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Fijar stock de un producto en una franquicia
// @Description  Crea la fila si no existe (upsert) y registra el ajuste como movimiento.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInventoryRequest  true  "franchiseId, productId, stockQuantity"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateInventory(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        franchiseId  query  int  false  "Franquicia (solo admin)"
// @Param        productId    query  int  false  "Producto"
// @Param        limit        query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.InventoryMovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	franchiseID, err := queryID(c, "franchiseId")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := queryID(c, "productId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListMovements(c.UserContext(), GetActor(c), franchiseID, productID, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

