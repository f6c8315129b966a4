package menuControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/catalog"
	"github.com/sarthak743/FlashDine/models"
	"github.com/sarthak743/FlashDine/store"
)

// GetMenu lists catalog items with live stock and favorite flags
// resolved against the session store. Supports ?category= and ?q=
// filters.
func GetMenu(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		if category != "" && category != "all" && !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		search := strings.ToLower(c.Query("q"))

		items := make([]models.MenuItem, 0, len(catalog.MenuItems))
		for _, item := range catalog.MenuItems {
			if category != "" && category != "all" && item.Category != models.Category(category) {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(item.Name), search) &&
				!strings.Contains(strings.ToLower(item.Description), search) {
				continue
			}
			item.InStock = sess.InStock(item)
			item.IsFavorite = sess.IsFavorite(item.ID)
			items = append(items, item)
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// InitializeStock seeds the store's stock override map from catalog
// defaults. Safe to call on every menu load.
func InitializeStock(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess.InitializeStock(catalog.MenuItems)
		c.JSON(http.StatusOK, gin.H{"message": "Stock initialized"})
	}
}

// ToggleFavorite flips an item's favorite flag.
func ToggleFavorite(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemID")
		if _, ok := catalog.MenuItemByID(itemID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		fav := sess.ToggleFavorite(itemID)
		c.JSON(http.StatusOK, gin.H{"item_id": itemID, "is_favorite": fav})
	}
}

// GetRecentlyOrdered resolves the recently-ordered id list against the
// catalog, preserving order. Ids no longer on the menu are skipped.
func GetRecentlyOrdered(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := make([]models.MenuItem, 0, 5)
		for _, id := range sess.RecentlyOrdered() {
			item, ok := catalog.MenuItemByID(id)
			if !ok {
				continue
			}
			item.InStock = sess.InStock(item)
			item.IsFavorite = sess.IsFavorite(item.ID)
			items = append(items, item)
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
