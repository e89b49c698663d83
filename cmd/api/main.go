package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/coupon"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/inventory"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/order"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/recipe"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/thefrankalbert/attabl-saas-sub000/internal/interfaces/http"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/config"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/logger"
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

	tenantRepo := postgres.NewTenantRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	couponUC := coupon.NewUseCase(couponRepo, log)
	pricingSvc := order.NewPricingService(tenantRepo, menuItemRepo)
	createOrderUC := order.NewCreateUseCase(tenantRepo, pricingSvc, couponUC, orderRepo, log)
	inventoryUC := inventory.NewUseCase(ingredientRepo, stockRepo, movementRepo, orderRepo, log)
	orderStatusUC := order.NewStatusUseCase(orderRepo, inventoryUC, log)
	recipeUC := recipe.NewUseCase(recipeRepo, menuItemRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateOrder: createOrderUC,
		OrderStatus: orderStatusUC,
		CouponUC:    couponUC,
		InventoryUC: inventoryUC,
		RecipeUC:    recipeUC,
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
