package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/farmacia-api/internal/application/analytics"
	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/farmacia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/farmacia-api/pkg/config"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, cfg.Inventory.DefaultLowStockThreshold); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("esquema actualizado")
	}

	franchiseRepo := postgres.NewFranchiseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewInventoryUseCase(txRunner, inventoryRepo, movementRepo, productRepo, franchiseRepo)
	orderUC := orders.NewOrderUseCase(
		txRunner, inventoryUC,
		orderRepo, customerRepo, productRepo, franchiseRepo,
		infrapdf.NewMarotoBillRenderer(),
		orders.Config{NumberPrefix: cfg.Orders.NumberPrefix},
	)
	authUC := auth.NewAuthUseCase(userRepo, franchiseRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpRouter.HeaderIdempotencyKey,
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		FranchiseUC: usecase.NewFranchiseUseCase(franchiseRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, cfg.Inventory.DefaultLowStockThreshold),
		CustomerUC:  usecase.NewCustomerUseCase(customerRepo, franchiseRepo),
		InventoryUC: inventoryUC,
		OrderUC:     orderUC,
		DashboardUC: appanalytics.NewDashboardUseCase(analyticsRepo),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
