package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/sarthak743/FlashDine/controllers/order"
	"github.com/sarthak743/FlashDine/store"
)

func SetupOrderRoutes(r *gin.Engine, sess *store.Session) {
	orders := r.Group("/orders")
	{
		// Checkout: snapshot the cart into a new order
		orders.POST("/place", orderControllers.PlaceOrderHandler(sess))

		// Kitchen display: all orders, newest first
		orders.GET("/", orderControllers.GetAllOrdersHandler(sess))

		// Websocket feed of order lifecycle events
		orders.GET("/ws", orderControllers.OrderFeedHandler(sess))

		// Customer tracking view
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(sess))
		orders.GET("/:orderID/receipt", orderControllers.GetReceiptHandler(sess))

		// Kitchen pipeline: advance one status step
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(sess))

		// Kitchen-supplied minutes-to-ready (gates the payment step)
		orders.PUT("/:orderID/time", orderControllers.UpdateEstimatedTimeHandler(sess))

		// Payment confirmation (upi simulated / counter by staff)
		orders.POST("/:orderID/pay", orderControllers.ConfirmPaymentHandler(sess))
	}
}
