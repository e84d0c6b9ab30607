package orders

import (
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// Config parámetros del flujo de pedidos.
type Config struct {
	NumberPrefix string // prefijo de los números de pedido generados, ej. "ORD"
}

// OrderUseCase flujo de pedidos: creación con descuento de stock, cambios de estado, consultas y factura.
type OrderUseCase struct {
	txRunner      OrderTxRunner
	stock         StockAdjuster
	orderRepo     repository.OrderRepository
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
	franchiseRepo repository.FranchiseRepository
	renderer      BillRenderer
	cfg           Config
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	stock StockAdjuster,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	franchiseRepo repository.FranchiseRepository,
	renderer BillRenderer,
	cfg Config,
) *OrderUseCase {
	if cfg.NumberPrefix == "" {
		cfg.NumberPrefix = "ORD"
	}
	return &OrderUseCase{
		txRunner:      txRunner,
		stock:         stock,
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		franchiseRepo: franchiseRepo,
		renderer:      renderer,
		cfg:           cfg,
	}
}
