package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/models"
	"github.com/sarthak743/FlashDine/store"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // "upi" or "counter"
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateEstimatedTimeRequest struct {
	Minutes int `json:"minutes" binding:"required,min=1,max=120"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	s := models.OrderStatus(strings.ToLower(status))
	if !s.Valid() {
		return "", errors.New("invalid order status")
	}
	return s, nil
}

// -------- Handlers --------

// PlaceOrderHandler snapshots the cart into a new order. The cart,
// table id and customer details must all be present in the session.
func PlaceOrderHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidPaymentMethod(req.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
			return
		}

		order, err := sess.PlaceOrder(models.PaymentMethod(req.PaymentMethod))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GetAllOrdersHandler lists every order in the session, newest first.
// This backs the kitchen display.
func GetAllOrdersHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sess.Orders())
	}
}

// GetOrderByIDHandler backs the tracking view.
func GetOrderByIDHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := sess.OrderByID(orderID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler advances an order one step along the
// pipeline. Requests that skip or reverse a step get a 409.
func UpdateOrderStatusHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := sess.AdvanceOrderStatus(orderID, status)
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		case errors.Is(err, store.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// UpdateEstimatedTimeHandler records the kitchen's minutes-to-ready.
// The 1-120 bound is enforced here at the API edge.
func UpdateEstimatedTimeHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateEstimatedTimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := sess.SetOrderEstimatedTime(orderID, req.Minutes)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
