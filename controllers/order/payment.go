package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/store"
)

// ConfirmPaymentHandler marks an order as paid. There is no reversal
// and no external gateway; UPI confirmation is simulated client-side
// and counter payment is confirmed by staff.
func ConfirmPaymentHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		order, err := sess.MarkOrderPaid(orderID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetReceiptHandler returns the receipt view of an order, including
// whether the receipt has been banned by an admin.
func GetReceiptHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := sess.OrderByID(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"receipt_id":        order.ReceiptID,
			"order_id":          order.ID,
			"table_id":          order.TableID,
			"items":             order.Items,
			"subtotal":          order.Subtotal,
			"tax":               order.Tax,
			"total":             order.Total,
			"payment_method":    order.PaymentMethod,
			"is_paid":           order.IsPaid,
			"banned":            sess.IsReceiptBanned(order.ReceiptID),
			"receipt_banned_at": order.ReceiptBannedAt,
			"created_at":        order.CreatedAt,
		})
	}
}
