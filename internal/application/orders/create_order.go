package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/pricing"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// CreateOrder valida el pedido, calcula montos en el servidor y en una sola transacción inserta
// cabecera y líneas y descuenta el stock de la franquicia. Si cualquier línea no tiene stock
// suficiente la transacción completa se revierte.
//
// Con clave de idempotencia, una segunda llamada con la misma clave devuelve el pedido original
// (Replayed = true) sin volver a descontar stock.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, actor domain.Actor, in dto.CreateOrderRequest) (*dto.CreateOrderResult, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	verr := &domain.ValidationError{}
	for i, it := range in.Items {
		if it.TaxRate != nil && it.TaxRate.IsNegative() {
			verr.Add(fmt.Sprintf("items[%d].taxRate", i), "debe ser mayor o igual a 0")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	status := entity.OrderStatusPending
	if in.Order.Status != "" {
		status = entity.OrderStatus(in.Order.Status)
	}

	// ── 1. Franquicia y cliente ───────────────────────────────────────────────
	franchiseID, err := actor.ResolveFranchise(in.Order.FranchiseID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.Order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("cliente %d: %w", in.Order.CustomerID, err)
	}
	if franchiseID == 0 {
		franchiseID = customer.FranchiseID
	}
	if customer.FranchiseID != franchiseID {
		return nil, fmt.Errorf("%w: el cliente no pertenece a la franquicia", domain.ErrForbidden)
	}
	franchise, err := uc.franchiseRepo.GetByID(ctx, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("franquicia %d: %w", franchiseID, err)
	}
	if !franchise.IsActive {
		return nil, domain.ErrFranchiseInactive
	}

	// ── 2. Idempotencia ───────────────────────────────────────────────────────
	key := normalizeIdempotencyKey(in.Order.IdempotencyKey)
	if key != "" {
		existing, err := uc.orderRepo.GetByIdempotencyKey(ctx, franchiseID, key)
		if err == nil {
			return replayed(existing), nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	// ── 3. Productos, precios y montos ────────────────────────────────────────
	products, err := uc.loadProducts(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	lines := make([]pricing.Line, len(in.Items))
	for i, it := range in.Items {
		p := products[it.ProductID]
		unitPrice := it.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = p.MRP
		}
		taxRate := p.GST
		if it.TaxRate != nil {
			taxRate = *it.TaxRate
		}
		gross := unitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if it.Discount.GreaterThan(gross) {
			verr.Add(fmt.Sprintf("items[%d].discount", i), "no puede superar cantidad × precio unitario")
		}
		lines[i] = pricing.Line{Quantity: it.Quantity, UnitPrice: unitPrice, Discount: it.Discount, TaxRate: taxRate}
	}
	totals, amounts := pricing.CalculateTotals(lines)
	checkAmount(verr, "order.totalAmount", in.Order.TotalAmount, totals.Total)
	checkAmount(verr, "order.discountAmount", in.Order.DiscountAmount, totals.Discount)
	checkAmount(verr, "order.taxAmount", in.Order.TaxAmount, totals.Tax)
	checkAmount(verr, "order.finalAmount", in.Order.FinalAmount, totals.Final)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	// ── 4. Entidades ──────────────────────────────────────────────────────────
	now := time.Now()
	order := &entity.Order{
		OrderNumber:    strings.TrimSpace(in.Order.OrderNumber),
		FranchiseID:    franchiseID,
		CustomerID:     customer.ID,
		Status:         status,
		TotalAmount:    totals.Total,
		DiscountAmount: totals.Discount,
		TaxAmount:      totals.Tax,
		FinalAmount:    totals.Final,
		Notes:          in.Order.Notes,
		CreatedBy:      actor.UserID,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = uc.newOrderNumber(now)
	}
	if key != "" {
		order.IdempotencyKey = &key
	}
	items := make([]*entity.OrderItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = &entity.OrderItem{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   lines[i].UnitPrice,
			Discount:    lines[i].Discount,
			TaxRate:     lines[i].TaxRate,
			TaxAmount:   amounts[i].TaxAmount,
			TotalAmount: amounts[i].Total,
		}
	}

	// ── 5. Transacción: cabecera, líneas y descuento de stock ─────────────────
	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := orderRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		// Orden ascendente por producto: dos pedidos concurrentes bloquean filas en el mismo orden.
		for _, item := range byProduct(items) {
			err := uc.stock.DecrementInTx(ctx, invRepo, movRepo,
				franchiseID, item.ProductID, item.Quantity, order.ID, actor.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return fmt.Errorf("%w: producto %d", err, item.ProductID)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Otra solicitud con la misma clave ganó la carrera: devolver su pedido.
		if key != "" && errors.Is(err, domain.ErrDuplicateRequest) {
			existing, gerr := uc.orderRepo.GetByIdempotencyKey(ctx, franchiseID, key)
			if gerr != nil {
				return nil, gerr
			}
			return replayed(existing), nil
		}
		return nil, err
	}
	return &dto.CreateOrderResult{Order: dto.FromOrder(order)}, nil
}

// loadProducts carga todos los productos referenciados. ErrNotFound si alguno no existe.
func (uc *OrderUseCase) loadProducts(ctx context.Context, items []dto.OrderItemInput) (map[int64]*entity.Product, error) {
	ids := make([]int64, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
	}
	return products, nil
}

// newOrderNumber genera PREFIJO-AAAAMMDD-XXXXXXXX.
func (uc *OrderUseCase) newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", uc.cfg.NumberPrefix, now.Format("20060102"), suffix)
}

// normalizeIdempotencyKey recorta espacios y, si la clave es un UUID, la lleva a su forma canónica.
func normalizeIdempotencyKey(key string) string {
	key = strings.TrimSpace(key)
	if id, err := uuid.Parse(key); err == nil {
		return id.String()
	}
	return key
}

func checkAmount(verr *domain.ValidationError, field string, got *decimal.Decimal, want decimal.Decimal) {
	if got != nil && !pricing.WithinTolerance(*got, want) {
		verr.Add(field, "no coincide con el valor calculado "+want.StringFixed(2))
	}
}

func byProduct(items []*entity.OrderItem) []*entity.OrderItem {
	sorted := make([]*entity.OrderItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })
	return sorted
}

func replayed(o *entity.Order) *dto.CreateOrderResult {
	return &dto.CreateOrderResult{Order: dto.FromOrder(o), Replayed: true}
}
