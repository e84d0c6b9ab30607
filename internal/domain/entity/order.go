package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de un pedido.
type OrderStatus string

// Estados de pedido.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions tabla de transiciones permitidas. completed y cancelled son terminales.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusCompleted},
	OrderStatusCompleted:  nil,
	OrderStatusCancelled:  nil,
}

// ParseOrderStatus valida un estado recibido como texto.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	_, ok := orderTransitions[st]
	return st, ok
}

// IsInitial indica si el estado es válido al crear un pedido.
func (s OrderStatus) IsInitial() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// CanTransitionTo indica si se permite pasar de s a next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order representa la cabecera de un pedido.
// Invariante: FinalAmount = TotalAmount - DiscountAmount + TaxAmount.
type Order struct {
	ID              int64
	OrderNumber     string
	FranchiseID     int64
	CustomerID      int64
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxAmount       decimal.Decimal
	FinalAmount     decimal.Decimal
	BillData        json.RawMessage // snapshot de la factura generada (opcional)
	BillGeneratedAt *time.Time
	Notes           *string
	IdempotencyKey  *string
	CreatedBy       int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AmountsConsistent verifica el invariante de montos de la cabecera.
func (o *Order) AmountsConsistent() bool {
	return o.TotalAmount.Sub(o.DiscountAmount).Add(o.TaxAmount).Equal(o.FinalAmount)
}

// OrderItem línea de un pedido. Inmutable después de creada.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal // monto absoluto de la línea
	TaxRate     decimal.Decimal // porcentaje
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderSummary fila de listado: pedido con resumen del cliente.
type OrderSummary struct {
	Order
	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     *string
	CustomerContact   string
	ItemCount         int
}

// OrderItemDetail línea con datos del producto para la vista de detalle.
type OrderItemDetail struct {
	OrderItem
	ProductName         string
	ProductPacking      string
	ProductManufacturer string
}

// OrderDetails vista compuesta: pedido, cliente y líneas con producto.
type OrderDetails struct {
	Order    Order
	Customer Customer
	Items    []OrderItemDetail
}
