package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/coupon"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/inventory"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/order"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/recipe"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateOrder *order.CreateUseCase
	OrderStatus *order.StatusUseCase
	CouponUC    *coupon.UseCase
	InventoryUC *inventory.UseCase
	RecipeUC    *recipe.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. El intake de pedidos es público (lo
// consume la carta QR sin sesión); todo lo demás requiere Bearer Token del
// dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderStatus)

	// Intake público (QR)
	public := api.Group("/public")
	public.Post("/orders", orderHandler.Create)

	// Rutas protegidas (dashboard)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret))

	orders := admin.Group("/orders")
	orders.Get("/:id", orderHandler.Get)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	coupons := admin.Group("/coupons")
	couponHandler := NewCouponHandler(deps.CouponUC)
	coupons.Post("/", RequireRole("owner", "manager"), couponHandler.Create)
	coupons.Get("/", couponHandler.List)
	coupons.Post("/validate", couponHandler.Validate)

	inv := admin.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/adjust", RequireRole("owner", "manager"), inventoryHandler.Adjust)
	inv.Post("/opening", RequireRole("owner", "manager"), inventoryHandler.SetOpening)
	inv.Get("/status", inventoryHandler.StockStatus)
	inv.Get("/movements", inventoryHandler.Movements)

	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	admin.Get("/menu-items/:menuItemId/recipe", recipeHandler.Get)
	admin.Put("/menu-items/:menuItemId/recipe", RequireRole("owner", "manager"), recipeHandler.Set)
}
