package router

import (
	"dpizza_backend/internal/handlers"
	"dpizza_backend/internal/repositories"
	"dpizza_backend/internal/services"
	"dpizza_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Setup wires repositories, services and handlers and registers every
// route. It also runs the one idempotent menu seeding pass, so a fresh
// store serves a usable storefront immediately.
func Setup(engine *gin.Engine, st *store.Store) error {
	// Initialize Repositories
	menuRepo := repositories.NewMenuRepository(st)
	couponRepo := repositories.NewCouponRepository(st)
	orderRepo := repositories.NewOrderRepository(st)
	profileRepo := repositories.NewProfileRepository(st)

	// Initialize Services
	catalogService := services.NewCatalogService(menuRepo)
	menuService := services.NewMenuService(menuRepo)
	couponService := services.NewCouponService(couponRepo)
	cartService := services.NewCartService(catalogService, couponService, orderRepo)
	orderService := services.NewOrderService(cartService, couponService, orderRepo, profileRepo)
	customerService := services.NewCustomerService(orderRepo)

	if err := catalogService.EnsureSeeded(); err != nil {
		return err
	}

	// Initialize Handlers
	menuHandler := handlers.NewMenuHandler(catalogService, menuService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	couponHandler := handlers.NewCouponHandler(couponService)
	customerHandler := handlers.NewCustomerHandler(customerService)

	apiV1 := engine.Group("/api/v1")

	SetupStorefrontRoutes(apiV1, menuHandler, cartHandler, orderHandler)

	// The admin console is a trusting single operator on the same machine;
	// there is deliberately no authentication in front of these routes.
	admin := apiV1.Group("/admin")
	SetupAdminRoutes(admin, menuHandler, couponHandler, orderHandler, customerHandler)

	return nil
}
