package dto_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, se obtuvo %v", err)
	out := make(map[string]string, len(verr.Errors))
	for _, fe := range verr.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func validOrder() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Order: dto.OrderHeaderInput{CustomerID: 1},
		Items: []dto.OrderItemInput{{ProductID: 1, Quantity: 1, UnitPrice: dec("10.50")}},
	}
}

func TestValidate_MaxDecimales(t *testing.T) {
	require.NoError(t, dto.Validate(validOrder()))

	t.Run("ceros a la derecha no cuentan", func(t *testing.T) {
		in := validOrder()
		in.Items[0].UnitPrice = dec("1.500")
		in.Items[0].TaxRate = ptr(dec("12.00"))
		in.Order.FinalAmount = ptr(dec("1.6800"))
		assert.NoError(t, dto.Validate(in))
	})

	t.Run("montos de línea", func(t *testing.T) {
		in := validOrder()
		in.Items[0].UnitPrice = dec("1.006")
		in.Items[0].Discount = dec("0.003")
		in.Items[0].TaxRate = ptr(dec("12.345"))
		fields := fieldErrors(t, dto.Validate(in))
		assert.Equal(t, "admite como máximo 2 decimales", fields["items[0].unitPrice"])
		assert.Contains(t, fields, "items[0].discount")
		assert.Contains(t, fields, "items[0].taxRate")
	})

	t.Run("totales de cabecera", func(t *testing.T) {
		in := validOrder()
		in.Order.TotalAmount = ptr(dec("10.505"))
		in.Order.FinalAmount = ptr(dec("10.499"))
		fields := fieldErrors(t, dto.Validate(in))
		assert.Contains(t, fields, "order.totalAmount")
		assert.Contains(t, fields, "order.finalAmount")
		assert.NotContains(t, fields, "order.taxAmount")
	})

	t.Run("producto", func(t *testing.T) {
		fields := fieldErrors(t, dto.Validate(dto.UpdateProductRequest{
			MRP: ptr(dec("9.999")), GST: ptr(dec("5.5")), Discount: ptr(dec("0.125")),
		}))
		assert.Contains(t, fields, "mrp")
		assert.NotContains(t, fields, "gst")
		assert.Contains(t, fields, "discount")
	})
}

func TestValidate_LimitesEnteros(t *testing.T) {
	in := validOrder()
	in.Items[0].Quantity = 3000000000
	in.Items[0].TaxRate = ptr(dec("150"))
	fields := fieldErrors(t, dto.Validate(in))
	assert.Contains(t, fields, "items[0].quantity")
	assert.Contains(t, fields, "items[0].taxRate")

	fields = fieldErrors(t, dto.Validate(dto.UpdateInventoryRequest{ProductID: 1, StockQuantity: ptr(2147483647)}))
	assert.Contains(t, fields, "stockQuantity")
	assert.NoError(t, dto.Validate(dto.UpdateInventoryRequest{ProductID: 1, StockQuantity: ptr(1000000000)}))

	fields = fieldErrors(t, dto.Validate(dto.UpdateProductRequest{CasePack: ptr(20000), LowStockThreshold: ptr(2000000000)}))
	assert.Contains(t, fields, "casePack")
	assert.Contains(t, fields, "lowStockThreshold")
}
