package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
)

// GenerateBill arma el snapshot de la factura del pedido y lo guarda en bill_data.
// Regenerar sobrescribe el snapshot anterior.
func (uc *OrderUseCase) GenerateBill(ctx context.Context, actor domain.Actor, orderID int64) (*dto.BillDTO, error) {
	details, err := uc.loadDetails(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	franchise, err := uc.franchiseRepo.GetByID(ctx, details.Order.FranchiseID)
	if err != nil {
		return nil, fmt.Errorf("bill: obtener franquicia: %w", err)
	}

	o := details.Order
	c := details.Customer
	franchiseEmail := franchise.Email
	bill := &dto.BillDTO{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		OrderDate:   o.CreatedAt,
		Status:      string(o.Status),
		Franchise: dto.BillParty{
			Name:          franchise.Name,
			Address:       franchise.Address,
			ContactNumber: franchise.ContactNumber,
			Email:         &franchiseEmail,
		},
		Customer: dto.BillParty{
			Name:          c.FullName(),
			Address:       c.Address,
			ContactNumber: c.ContactNumber,
			Email:         c.Email,
		},
		Items: make([]dto.BillLine, 0, len(details.Items)),
		Totals: dto.BillTotals{
			Total:    o.TotalAmount,
			Discount: o.DiscountAmount,
			Tax:      o.TaxAmount,
			Final:    o.FinalAmount,
		},
		Notes:       o.Notes,
		GeneratedAt: time.Now().UTC(),
	}
	for _, it := range details.Items {
		bill.Items = append(bill.Items, dto.BillLine{
			ProductID:   it.ProductID,
			Name:        it.ProductName,
			Packing:     it.ProductPacking,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			TaxRate:     it.TaxRate,
			TaxAmount:   it.TaxAmount,
			TotalAmount: it.TotalAmount,
		})
	}

	raw, err := json.Marshal(bill)
	if err != nil {
		return nil, fmt.Errorf("bill: serializar: %w", err)
	}
	if err := uc.orderRepo.SaveBill(ctx, o.ID, raw, bill.GeneratedAt); err != nil {
		return nil, err
	}
	return bill, nil
}

// BillPDF devuelve el PDF de la factura del pedido. Si aún no hay snapshot se genera primero.
func (uc *OrderUseCase) BillPDF(ctx context.Context, actor domain.Actor, orderID int64) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if !actor.CanAccess(order.FranchiseID) {
		return nil, "", domain.ErrNotFound
	}

	var bill *dto.BillDTO
	if len(order.BillData) == 0 || string(order.BillData) == "null" {
		if bill, err = uc.GenerateBill(ctx, actor, orderID); err != nil {
			return nil, "", err
		}
	} else {
		bill = &dto.BillDTO{}
		if err := json.Unmarshal(order.BillData, bill); err != nil {
			return nil, "", fmt.Errorf("bill: leer snapshot: %w", err)
		}
	}

	pdfBytes, err = uc.renderer.RenderBill(ctx, bill)
	if err != nil {
		return nil, "", fmt.Errorf("bill: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura-%s.pdf", bill.OrderNumber), nil
}
