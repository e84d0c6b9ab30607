package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body de POST /api/orders: cabecera más líneas.
type CreateOrderRequest struct {
	Order OrderHeaderInput `json:"order"`
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderHeaderInput cabecera enviada por el cliente. Los montos son opcionales:
// si vienen, deben coincidir con los calculados en el servidor.
type OrderHeaderInput struct {
	OrderNumber    string           `json:"orderNumber" validate:"omitempty,max=50"`
	FranchiseID    int64            `json:"franchiseId" validate:"gte=0"`
	CustomerID     int64            `json:"customerId" validate:"required,gt=0"`
	Status         string           `json:"status" validate:"omitempty,oneof=pending processing"`
	TotalAmount    *decimal.Decimal `json:"totalAmount" validate:"omitempty,maxdecimals=2"`
	DiscountAmount *decimal.Decimal `json:"discountAmount" validate:"omitempty,maxdecimals=2"`
	TaxAmount      *decimal.Decimal `json:"taxAmount" validate:"omitempty,maxdecimals=2"`
	FinalAmount    *decimal.Decimal `json:"finalAmount" validate:"omitempty,maxdecimals=2"`
	Notes          *string          `json:"notes" validate:"omitempty,max=1000"`
	IdempotencyKey string           `json:"idempotencyKey" validate:"omitempty,max=100"`
}

// OrderItemInput línea enviada por el cliente. unitPrice 0 usa el MRP y taxRate ausente usa el GST del producto.
type OrderItemInput struct {
	ProductID int64            `json:"productId" validate:"required,gt=0"`
	Quantity  int              `json:"quantity" validate:"gt=0,lte=1000000"`
	UnitPrice decimal.Decimal  `json:"unitPrice" validate:"gte=0,maxdecimals=2"`
	Discount  decimal.Decimal  `json:"discount" validate:"gte=0,maxdecimals=2"`
	TaxRate   *decimal.Decimal `json:"taxRate" validate:"omitempty,lte=100,maxdecimals=2"`
}

// UpdateOrderStatusRequest body de PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse cabecera de un pedido.
type OrderResponse struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	FranchiseID     int64           `json:"franchiseId"`
	CustomerID      int64           `json:"customerId"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	Notes           *string         `json:"notes"`
	IdempotencyKey  *string         `json:"idempotencyKey,omitempty"`
	BillGeneratedAt *time.Time      `json:"billGeneratedAt"`
	CreatedBy       int64           `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateOrderResult resultado de crear un pedido. Replayed indica que la clave de idempotencia
// ya había sido procesada y se devuelve el pedido existente sin escribir.
type CreateOrderResult struct {
	Order    OrderResponse
	Replayed bool
}

// CustomerSummary datos del cliente en listados de pedidos.
type CustomerSummary struct {
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	ContactNumber string  `json:"contactNumber"`
}

// OrderListItem fila de GET /api/orders.
type OrderListItem struct {
	OrderResponse
	Customer  CustomerSummary `json:"customer"`
	ItemCount int             `json:"itemCount"`
}

// ProductSummary datos del producto en el detalle de un pedido.
type ProductSummary struct {
	Name         string `json:"name"`
	Packing      string `json:"packing"`
	Manufacturer string `json:"manufacturer"`
}

// OrderItemResponse línea de pedido con su producto.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"productId"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Product     ProductSummary  `json:"product"`
}

// OrderDetailsResponse respuesta de GET /api/orders/:id.
type OrderDetailsResponse struct {
	Order    OrderResponse       `json:"order"`
	Customer CustomerResponse    `json:"customer"`
	Items    []OrderItemResponse `json:"items"`
}
