package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/catalog"
	"github.com/sarthak743/FlashDine/models"
	"github.com/sarthak743/FlashDine/store"
)

type AddItemInput struct {
	ItemID string `json:"item_id" binding:"required"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartResponse is the shape every cart endpoint returns: the current
// cart plus derived totals.
func cartResponse(items []models.CartItem) gin.H {
	subtotal, tax, total := store.Totals(items)
	return gin.H{
		"items":    items,
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	}
}

// GetCart returns the cart with totals.
func GetCart(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(sess.Cart()))
	}
}

// AddToCart adds one unit of a catalog item. Repeat adds bump the
// quantity of the existing entry.
func AddToCart(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, ok := catalog.MenuItemByID(input.ItemID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not exist"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(sess.AddToCart(item)))
	}
}

// UpdateQuantity sets the quantity for a cart entry. Zero or negative
// removes it.
func UpdateQuantity(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items := sess.UpdateQuantity(c.Param("itemID"), *input.Quantity)
		c.JSON(http.StatusOK, cartResponse(items))
	}
}

// RemoveFromCart drops a single entry.
func RemoveFromCart(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(sess.RemoveFromCart(c.Param("itemID"))))
	}
}

// ClearCart empties the cart.
func ClearCart(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
