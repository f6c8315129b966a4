package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/sarthak743/FlashDine/controllers/admin"
	"github.com/sarthak743/FlashDine/middleware"
	"github.com/sarthak743/FlashDine/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an
// admin JWT from /auth/admin-login.
func SetupAdminRoutes(r *gin.Engine, sess *store.Session) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken)
	{
		// ─────────── Receipt Management ───────────
		receipts := adminGroup.Group("/receipts")
		{
			receipts.POST("/:receiptID/ban", adminController.BanReceipt(sess))
			receipts.GET("/:receiptID/banned", adminController.IsReceiptBanned(sess))
		}

		// ─────────── Stock Management ───────────
		adminGroup.POST("/menu/:itemID/stock", adminController.ToggleStock(sess))

		// ─────────── Reports ───────────
		adminGroup.GET("/orders/export", adminController.ExportOrdersToExcel(sess))
	}
}
