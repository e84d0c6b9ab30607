package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
)

// HeaderIdempotencyKey header opcional para reintentos seguros de POST /api/orders.
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderHandler maneja el flujo de pedidos.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Crea cabecera y líneas y descuenta stock en una sola transacción.
// @Description  Si la clave de idempotencia ya fue procesada devuelve 200 con el pedido existente.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Clave de idempotencia"
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido y líneas"
// @Success      201   {object}  dto.OrderResponse
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if key := strings.TrimSpace(c.Get(HeaderIdempotencyKey)); key != "" {
		in.Order.IdempotencyKey = key
	}
	res, err := h.uc.CreateOrder(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if res.Replayed {
		return c.Status(fiber.StatusOK).JSON(res.Order)
	}
	return c.Status(fiber.StatusCreated).JSON(res.Order)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        franchiseId  query  int  false  "Franquicia (solo admin)"
// @Success      200  {array}  dto.OrderListItem
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	franchiseID, err := queryID(c, "franchiseId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListOrders(c.UserContext(), GetActor(c), franchiseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Pedidos recientes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(5)
// @Success      200  {array}  dto.OrderListItem
// @Router       /api/orders/recent [get]
func (h *OrderHandler) Recent(c *fiber.Ctx) error {
	franchiseID, err := queryID(c, "franchiseId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListRecentOrders(c.UserContext(), GetActor(c), franchiseID, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetOrderDetails(c.UserContext(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Cancelar un pedido devuelve su stock al inventario.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateOrderStatus(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GenerateBill godoc
// @Summary      Generar factura del pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.BillDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/bill [post]
func (h *OrderHandler) GenerateBill(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GenerateBill(c.UserContext(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BillPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/bill/pdf [get]
func (h *OrderHandler) BillPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, filename, err := h.uc.BillPDF(c.UserContext(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
