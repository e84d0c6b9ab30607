package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/farmacia-api/internal/application/analytics"
	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	FranchiseUC *usecase.FranchiseUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	InventoryUC *inventory.InventoryUseCase
	OrderUC     *orders.OrderUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(domain.RoleAdmin)
	managers := RequireRole(domain.RoleAdmin, domain.RoleManager)

	// Auth: login público, registro solo admin
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", requireAuth, adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", requireAuth)
	protected.Get("/user", authHandler.Me)

	// Franchises
	franchiseHandler := NewFranchiseHandler(deps.FranchiseUC)
	franchises := protected.Group("/franchises")
	franchises.Get("/", franchiseHandler.List)
	franchises.Post("/", adminOnly, franchiseHandler.Create)
	franchises.Get("/:id", franchiseHandler.GetByID)

	// Products: catálogo global, escritura para admin y manager
	productHandler := NewProductHandler(deps.ProductUC, deps.InventoryUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Post("/", managers, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	// Customers
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Get("/recent", customerHandler.Recent)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", managers, customerHandler.Delete)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/recent", orderHandler.Recent)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Post("/:id/bill", orderHandler.GenerateBill)
	ordersGroup.Get("/:id/bill/pdf", orderHandler.BillPDF)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Put("/", inventoryHandler.Update)
	inv.Get("/movements", inventoryHandler.Movements)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
}
