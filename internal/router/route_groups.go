package router

import (
	"dpizza_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the customer-facing routes: catalog,
// cart, checkout, tracking and profile.
func SetupStorefrontRoutes(
	group *gin.RouterGroup,
	menuHandler *handlers.MenuHandler,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
) {
	group.GET("/menu", menuHandler.GetMenu)

	cartRoutes := group.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PATCH("/items/:id", cartHandler.ChangeQuantity)
		cartRoutes.POST("/coupon", cartHandler.ApplyCoupon)
		cartRoutes.DELETE("/coupon", cartHandler.RemoveCoupon)
		cartRoutes.POST("/reorder", cartHandler.Reorder)
	}

	orderRoutes := group.Group("/orders")
	{
		orderRoutes.POST("", orderHandler.SubmitOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		// "current" is handled by the same parameterized lookup.
		orderRoutes.GET("/:id", orderHandler.TrackOrder)
	}

	group.GET("/profile", orderHandler.GetProfile)
}

// SetupAdminRoutes registers the admin console routes: menu and coupon
// mutation, the order dashboard and customer rollups.
func SetupAdminRoutes(
	group *gin.RouterGroup,
	menuHandler *handlers.MenuHandler,
	couponHandler *handlers.CouponHandler,
	orderHandler *handlers.OrderHandler,
	customerHandler *handlers.CustomerHandler,
) {
	menuRoutes := group.Group("/menu")
	{
		menuRoutes.GET("", menuHandler.GetAdminMenu)
		menuRoutes.POST("", menuHandler.CreateMenuItem)
		menuRoutes.PUT("/:id", menuHandler.UpdateMenuItem)
		menuRoutes.DELETE("/:id", menuHandler.DeleteMenuItem)
	}

	couponRoutes := group.Group("/coupons")
	{
		couponRoutes.GET("", couponHandler.GetCoupons)
		couponRoutes.POST("", couponHandler.CreateCoupon)
		couponRoutes.PUT("/:code", couponHandler.UpdateCoupon)
		couponRoutes.DELETE("/:code", couponHandler.DeleteCoupon)
	}

	orderRoutes := group.Group("/orders")
	{
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orderRoutes.DELETE("", orderHandler.ClearOrders)
	}

	group.GET("/customers", customerHandler.GetCustomers)
	group.GET("/dashboard/summary", customerHandler.GetDashboardSummary)
}
