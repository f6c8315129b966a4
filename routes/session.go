package routes

import (
	"github.com/gin-gonic/gin"
	scanController "github.com/sarthak743/FlashDine/controllers/scan"
	sessionControllers "github.com/sarthak743/FlashDine/controllers/session"
	"github.com/sarthak743/FlashDine/scanner"
	"github.com/sarthak743/FlashDine/store"
)

// SetupSessionRoutes registers table/customer session endpoints and
// the simulated scanner.
func SetupSessionRoutes(r *gin.Engine, sess *store.Session, det scanner.Detector, uploadDir string) {
	sessionGroup := r.Group("/session")
	{
		sessionGroup.GET("/", sessionControllers.GetSession(sess))
		sessionGroup.POST("/table", sessionControllers.StartSession(sess))
		sessionGroup.POST("/customer", sessionControllers.SetCustomerDetails(sess))
	}

	r.POST("/scan/frame", scanController.HandleFrameUpload(det, uploadDir))
}
