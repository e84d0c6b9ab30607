package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/farmacia-api/internal/application/analytics"
	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/farmacia-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/farmacia-api/pkg/jwt"
)

type apiFixture struct {
	app        *fiber.App
	store      *memory.Store
	franchise  *entity.Franchise
	customer   *entity.Customer
	productID  int64
	staffToken string
}

// newAPI levanta el router completo sobre el store en memoria con stock 10 del producto 101.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	franchise := &entity.Franchise{Name: "Centro", Address: "Calle 1", ContactNumber: "1", Email: "c@f.test", IsActive: true}
	require.NoError(t, store.Franchises().Create(ctx, franchise))
	customer := &entity.Customer{FranchiseID: franchise.ID, FirstName: "Ana", LastName: "Pérez", Address: "Calle 2", ContactNumber: "2"}
	require.NoError(t, store.Customers().Create(ctx, customer))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{
		PrCode: 101, Name: "Paracetamol", Packing: "10x10", MRP: decimal.NewFromInt(50), GST: decimal.NewFromInt(12),
		CasePack: 1, LowStockThreshold: 5,
	}))
	require.NoError(t, store.Inventory().Upsert(ctx, &entity.Inventory{FranchiseID: franchise.ID, ProductID: 101, StockQuantity: 10}))

	invUC := inventory.NewInventoryUseCase(store, store.Inventory(), store.Movements(), store.Products(), store.Franchises())
	deps := apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store.Users(), store.Franchises(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5, Issuer: testIssuer}),
		FranchiseUC: usecase.NewFranchiseUseCase(store.Franchises()),
		ProductUC:   usecase.NewProductUseCase(store.Products(), 10),
		CustomerUC:  usecase.NewCustomerUseCase(store.Customers(), store.Franchises()),
		InventoryUC: invUC,
		OrderUC: orders.NewOrderUseCase(store, invUC, store.Orders(), store.Customers(), store.Products(), store.Franchises(),
			pdf.NewMarotoBillRenderer(), orders.Config{NumberPrefix: "ORD"}),
		DashboardUC: appanalytics.NewDashboardUseCase(store.Analytics()),
		JWTSecret:   testJWTSecret,
	}
	app := fiber.New()
	apphttp.Router(app, deps)

	tok, err := pkgjwt.Generate(testJWTSecret, 7, franchise.ID, "staff", testIssuer, testExpMin)
	require.NoError(t, err)

	return &apiFixture{app: app, store: store, franchise: franchise, customer: customer, productID: 101, staffToken: "Bearer " + tok}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", f.staffToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) orderBody(qty int) fiber.Map {
	return fiber.Map{
		"order": fiber.Map{"customerId": f.customer.ID},
		"items": []fiber.Map{{"productId": f.productID, "quantity": qty}},
	}
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAPI_CrearPedidoYStock(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodPost, "/api/orders", f.orderBody(4), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.True(t, decimal.RequireFromString("224").Equal(order.FinalAmount), order.FinalAmount.String())

	resp = f.do(t, http.MethodPost, "/api/orders", f.orderBody(7), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)

	resp = f.do(t, http.MethodGet, "/api/inventory", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decode[[]dto.InventoryResponse](t, resp)
	require.Len(t, inv, 1)
	assert.Equal(t, 6, inv[0].StockQuantity)
}

func TestAPI_IdempotencyKeyHeader(t *testing.T) {
	f := newAPI(t)
	headers := map[string]string{apphttp.HeaderIdempotencyKey: "pedido-123"}

	resp := f.do(t, http.MethodPost, "/api/orders", f.orderBody(2), headers)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decode[dto.OrderResponse](t, resp)

	resp = f.do(t, http.MethodPost, "/api/orders", f.orderBody(2), headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, first.ID, second.ID)

	inv, err := f.store.Inventory().Get(context.Background(), f.franchise.ID, f.productID)
	require.NoError(t, err)
	assert.Equal(t, 8, inv.StockQuantity)
}

func TestAPI_ErroresDeValidacion(t *testing.T) {
	f := newAPI(t)
	body := fiber.Map{
		"order": fiber.Map{"customerId": f.customer.ID},
		"items": []fiber.Map{{"productId": f.productID, "quantity": 0}},
	}
	resp := f.do(t, http.MethodPost, "/api/orders", body, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
	fields := make([]string, 0, len(errBody.Errors))
	for _, fe := range errBody.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "items[0].quantity")

	resp = f.do(t, http.MethodPost, "/api/orders", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	subCent := fiber.Map{
		"order": fiber.Map{"customerId": f.customer.ID},
		"items": []fiber.Map{{"productId": f.productID, "quantity": 1, "unitPrice": 1.006}},
	}
	resp = f.do(t, http.MethodPost, "/api/orders", subCent, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody = decode[dto.ErrorResponse](t, resp)
	require.NotEmpty(t, errBody.Errors)
	assert.Equal(t, "items[0].unitPrice", errBody.Errors[0].Field)
}

func TestAPI_EstadoDePedido(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodPatch, "/api/orders/999/status", fiber.Map{"status": "processing"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/orders", f.orderBody(3), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	path := "/api/orders/" + itoa(order.ID) + "/status"

	resp = f.do(t, http.MethodPatch, path, fiber.Map{"status": "completed"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = f.do(t, http.MethodPatch, path, fiber.Map{"status": "cancelled"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "cancelled", updated.Status)

	resp = f.do(t, http.MethodGet, "/api/dashboard/stats", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dto.DashboardStatsDTO](t, resp)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.Customers)
}

func TestAPI_FacturaPDF(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/orders", f.orderBody(1), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)

	resp = f.do(t, http.MethodGet, "/api/orders/"+itoa(order.ID)+"/bill/pdf", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura-"+order.OrderNumber+".pdf")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestAPI_RutasProtegidas(t *testing.T) {
	f := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/franchises", fiber.Map{"name": "Sur"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "solo admin crea franquicias")

	resp = f.do(t, http.MethodGet, "/api/products/low-stock", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	low := decode[[]dto.LowStockItemResponse](t, resp)
	assert.Empty(t, low)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err = f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
