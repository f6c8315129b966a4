package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/sarthak743/FlashDine/controllers/cart"
	menuControllers "github.com/sarthak743/FlashDine/controllers/menu"
	"github.com/sarthak743/FlashDine/store"
)

// SetupMenuRoutes registers menu browsing and cart endpoints.
func SetupMenuRoutes(r *gin.Engine, sess *store.Session) {
	menuGroup := r.Group("/menu")
	{
		menuGroup.GET("/", menuControllers.GetMenu(sess))                         // GET /menu?category=&q=
		menuGroup.GET("/recent", menuControllers.GetRecentlyOrdered(sess))        // GET /menu/recent
		menuGroup.POST("/stock/init", menuControllers.InitializeStock(sess))      // POST /menu/stock/init
		menuGroup.POST("/:itemID/favorite", menuControllers.ToggleFavorite(sess)) // POST /menu/:itemID/favorite
	}

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(sess))                  // GET /cart
		cartGroup.POST("/", cartControllers.AddToCart(sess))               // POST /cart
		cartGroup.PUT("/:itemID", cartControllers.UpdateQuantity(sess))    // PUT /cart/:itemID
		cartGroup.DELETE("/:itemID", cartControllers.RemoveFromCart(sess)) // DELETE /cart/:itemID
		cartGroup.DELETE("/", cartControllers.ClearCart(sess))             // DELETE /cart
	}
}
