package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/zaxiang/Mini-Amazon/controllers/order"
	"github.com/zaxiang/Mini-Amazon/middleware"
	"github.com/zaxiang/Mini-Amazon/service"
)

func SetupOrderRoutes(r *gin.Engine, svc *service.Registry) {
	// Checkout converts the active cart into an order.
	r.POST("/checkout", middleware.ValidateToken, orderControllers.CheckoutHandler(svc.Checkout, svc.Fulfillment))

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.GET("/", orderControllers.GetUserOrders(svc.Fulfillment))         // GET /orders
		orders.GET("/:orderID", orderControllers.GetOrderByID(svc.Fulfillment))  // GET /orders/:orderID

		// Per-line fulfillment, seller-only.
		orders.PUT("/:orderID/lines/:offeringID/fulfill", orderControllers.MarkLineFulfilled(svc.Fulfillment))
	}

	seller := r.Group("/seller/orders")
	seller.Use(middleware.ValidateToken)
	{
		seller.GET("/", orderControllers.GetSellerOrders(svc.Fulfillment))        // GET /seller/orders
		seller.GET("/export", orderControllers.ExportSellerOrders(svc.Fulfillment)) // GET /seller/orders/export
	}

	// websocket endpoint for real-time order updates
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
