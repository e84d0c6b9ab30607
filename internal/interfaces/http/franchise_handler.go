package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
)

// FranchiseHandler maneja las peticiones HTTP para Franchise.
type FranchiseHandler struct {
	uc *usecase.FranchiseUseCase
}

// NewFranchiseHandler construye el handler.
func NewFranchiseHandler(uc *usecase.FranchiseUseCase) *FranchiseHandler {
	return &FranchiseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear franquicia (solo admin)
// @Tags         franchises
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFranchiseRequest  true  "Datos de la franquicia"
// @Success      201   {object}  dto.FranchiseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/franchises [post]
func (h *FranchiseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFranchiseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener franquicia
// @Tags         franchises
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la franquicia"
// @Success      200  {object}  dto.FranchiseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/franchises/{id} [get]
func (h *FranchiseHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar franquicias
// @Tags         franchises
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FranchiseResponse
// @Router       /api/franchises [get]
func (h *FranchiseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
