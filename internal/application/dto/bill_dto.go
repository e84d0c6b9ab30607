package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillParty datos de contacto de emisor o cliente en la factura.
type BillParty struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"contactNumber"`
	Email         *string `json:"email,omitempty"`
}

// BillLine línea de la factura.
type BillLine struct {
	ProductID   int64           `json:"productId"`
	Name        string          `json:"name"`
	Packing     string          `json:"packing"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// BillTotals totales de la factura.
type BillTotals struct {
	Total    decimal.Decimal `json:"total"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Final    decimal.Decimal `json:"final"`
}

// BillDTO snapshot de factura guardado en orders.bill_data y usado para el PDF.
type BillDTO struct {
	OrderID     int64      `json:"orderId"`
	OrderNumber string     `json:"orderNumber"`
	OrderDate   time.Time  `json:"orderDate"`
	Status      string     `json:"status"`
	Franchise   BillParty  `json:"franchise"`
	Customer    BillParty  `json:"customer"`
	Items       []BillLine `json:"items"`
	Totals      BillTotals `json:"totals"`
	Notes       *string    `json:"notes,omitempty"`
	GeneratedAt time.Time  `json:"generatedAt"`
}
