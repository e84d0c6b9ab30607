package dto

import "github.com/jhoicas/farmacia-api/internal/domain/entity"

// Conversión de entidades a respuestas HTTP.

func FromFranchise(f *entity.Franchise) FranchiseResponse {
	return FranchiseResponse{
		ID:            f.ID,
		Name:          f.Name,
		Address:       f.Address,
		ContactNumber: f.ContactNumber,
		Email:         f.Email,
		IsActive:      f.IsActive,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		FranchiseID: u.FranchiseID,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		FranchiseID:   c.FranchiseID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Address:       c.Address,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		PrCode:               p.PrCode,
		Category:             p.Category,
		Manufacturer:         p.Manufacturer,
		Name:                 p.Name,
		Packing:              p.Packing,
		MRP:                  p.MRP,
		CasePack:             p.CasePack,
		Composition:          p.Composition,
		GST:                  p.GST,
		Discount:             p.Discount,
		ExpiryDate:           p.ExpiryDate.Format(DateLayout),
		PrescriptionRequired: p.PrescriptionRequired,
		Supplier:             p.Supplier,
		LowStockThreshold:    p.LowStockThreshold,
		StockQuantity:        p.StockQuantity,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func FromInventory(inv *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:            inv.ID,
		FranchiseID:   inv.FranchiseID,
		ProductID:     inv.ProductID,
		StockQuantity: inv.StockQuantity,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func FromMovement(m *entity.InventoryMovement) InventoryMovementResponse {
	return InventoryMovementResponse{
		ID:                m.ID,
		FranchiseID:       m.FranchiseID,
		ProductID:         m.ProductID,
		Type:              m.Type,
		Quantity:          m.Quantity,
		ResultingQuantity: m.ResultingQuantity,
		OrderID:           m.OrderID,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}

func FromLowStockItem(it entity.LowStockItem) LowStockItemResponse {
	return LowStockItemResponse{
		FranchiseID:       it.FranchiseID,
		ProductID:         it.ProductID,
		Name:              it.ProductName,
		Packing:           it.Packing,
		Manufacturer:      it.Manufacturer,
		StockQuantity:     it.StockQuantity,
		LowStockThreshold: it.LowStockThreshold,
		UpdatedAt:         it.UpdatedAt,
	}
}

func FromOrder(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		FranchiseID:     o.FranchiseID,
		CustomerID:      o.CustomerID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		DiscountAmount:  o.DiscountAmount,
		TaxAmount:       o.TaxAmount,
		FinalAmount:     o.FinalAmount,
		Notes:           o.Notes,
		IdempotencyKey:  o.IdempotencyKey,
		BillGeneratedAt: o.BillGeneratedAt,
		CreatedBy:       o.CreatedBy,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOrderSummary(s *entity.OrderSummary) OrderListItem {
	return OrderListItem{
		OrderResponse: FromOrder(&s.Order),
		Customer: CustomerSummary{
			Name:          s.CustomerFirstName + " " + s.CustomerLastName,
			Email:         s.CustomerEmail,
			ContactNumber: s.CustomerContact,
		},
		ItemCount: s.ItemCount,
	}
}

func FromOrderItem(d *entity.OrderItemDetail) OrderItemResponse {
	return OrderItemResponse{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Discount:    d.Discount,
		TaxRate:     d.TaxRate,
		TaxAmount:   d.TaxAmount,
		TotalAmount: d.TotalAmount,
		Product: ProductSummary{
			Name:         d.ProductName,
			Packing:      d.ProductPacking,
			Manufacturer: d.ProductManufacturer,
		},
	}
}
