package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	// Create inserta la cabecera. ErrDuplicateRequest si la clave de idempotencia ya existe
	// en la franquicia; ErrDuplicate si el número de pedido ya existe.
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// GetForUpdate bloquea la fila del pedido (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Order, error)
	GetByIdempotencyKey(ctx context.Context, franchiseID int64, key string) (*entity.Order, error)
	GetItems(ctx context.Context, orderID int64) ([]entity.OrderItemDetail, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)
	SaveBill(ctx context.Context, id int64, bill json.RawMessage, generatedAt time.Time) error
	// List pedidos con resumen del cliente, más recientes primero. limit <= 0 sin límite.
	List(ctx context.Context, franchiseID int64, limit int) ([]entity.OrderSummary, error)
}
