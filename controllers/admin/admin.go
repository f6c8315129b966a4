package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/catalog"
	"github.com/sarthak743/FlashDine/store"
)

// BanReceipt marks a receipt as fraudulent. Every order carrying the
// receipt gets a ban timestamp. Idempotent: banning twice is a no-op.
func BanReceipt(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		receiptID := c.Param("receiptID")
		if receiptID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "receiptID is required"})
			return
		}

		affected := sess.BanReceipt(receiptID)
		log.Printf("🚫 Receipt banned: %s (%d orders stamped)", receiptID, len(affected))

		c.JSON(http.StatusOK, gin.H{
			"receipt_id":      receiptID,
			"banned":          true,
			"orders_affected": len(affected),
		})
	}
}

// IsReceiptBanned reports the ban state of a receipt.
func IsReceiptBanned(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		receiptID := c.Param("receiptID")
		c.JSON(http.StatusOK, gin.H{
			"receipt_id": receiptID,
			"banned":     sess.IsReceiptBanned(receiptID),
		})
	}
}

// ToggleStock flips an item's availability override for the session.
func ToggleStock(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemID")
		if _, ok := catalog.MenuItemByID(itemID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		inStock := sess.ToggleStock(itemID)
		c.JSON(http.StatusOK, gin.H{"item_id": itemID, "in_stock": inStock})
	}
}
