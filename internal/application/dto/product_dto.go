package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas sin hora en la API (ej. expiryDate).
const DateLayout = "2006-01-02"

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	PrCode               int64           `json:"prCode" validate:"required,gt=0"`
	Category             string          `json:"category" validate:"required,max=100"`
	Manufacturer         string          `json:"manufacturer" validate:"required,max=200"`
	Name                 string          `json:"name" validate:"required,max=200"`
	Packing              string          `json:"packing" validate:"required,max=100"`
	MRP                  decimal.Decimal `json:"mrp" validate:"gte=0,maxdecimals=2"`
	CasePack             int             `json:"casePack" validate:"gte=1,lte=10000"`
	Composition          *string         `json:"composition"`
	GST                  decimal.Decimal `json:"gst" validate:"gte=0,lte=100,maxdecimals=2"`
	Discount             decimal.Decimal `json:"discount" validate:"gte=0,lte=100,maxdecimals=2"`
	ExpiryDate           string          `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	PrescriptionRequired bool            `json:"prescriptionRequired"`
	Supplier             string          `json:"supplier" validate:"required,max=200"`
	LowStockThreshold    *int            `json:"lowStockThreshold" validate:"omitempty,gte=0,lte=1000000000"`
}

// UpdateProductRequest actualización parcial. El stock no se modifica aquí (ver inventario).
type UpdateProductRequest struct {
	Category             *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Manufacturer         *string          `json:"manufacturer" validate:"omitempty,min=1,max=200"`
	Name                 *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Packing              *string          `json:"packing" validate:"omitempty,min=1,max=100"`
	MRP                  *decimal.Decimal `json:"mrp" validate:"omitempty,maxdecimals=2"`
	CasePack             *int             `json:"casePack" validate:"omitempty,gte=1,lte=10000"`
	Composition          *string          `json:"composition"`
	GST                  *decimal.Decimal `json:"gst" validate:"omitempty,maxdecimals=2"`
	Discount             *decimal.Decimal `json:"discount" validate:"omitempty,maxdecimals=2"`
	ExpiryDate           *string          `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	PrescriptionRequired *bool            `json:"prescriptionRequired"`
	Supplier             *string          `json:"supplier" validate:"omitempty,min=1,max=200"`
	LowStockThreshold    *int             `json:"lowStockThreshold" validate:"omitempty,gte=0,lte=1000000000"`
}

// ProductResponse salida de un producto. stockQuantity es la suma del inventario de las franquicias.
type ProductResponse struct {
	PrCode               int64           `json:"prCode"`
	Category             string          `json:"category"`
	Manufacturer         string          `json:"manufacturer"`
	Name                 string          `json:"name"`
	Packing              string          `json:"packing"`
	MRP                  decimal.Decimal `json:"mrp"`
	CasePack             int             `json:"casePack"`
	Composition          *string         `json:"composition"`
	GST                  decimal.Decimal `json:"gst"`
	Discount             decimal.Decimal `json:"discount"`
	ExpiryDate           string          `json:"expiryDate"`
	PrescriptionRequired bool            `json:"prescriptionRequired"`
	Supplier             string          `json:"supplier"`
	LowStockThreshold    int             `json:"lowStockThreshold"`
	StockQuantity        int             `json:"stockQuantity"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}
