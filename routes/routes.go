package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/scanner"
	"github.com/sarthak743/FlashDine/store"
)

// SetupRoutes is the single entry-point that wires up every route
// group against the session store.
func SetupRoutes(r *gin.Engine, sess *store.Session, det scanner.Detector, uploadDir string) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// Table/customer session and the scanner endpoint
	SetupSessionRoutes(r, sess, det, uploadDir)

	// Menu browsing and cart
	SetupMenuRoutes(r, sess)

	// Checkout, tracking, kitchen pipeline
	SetupOrderRoutes(r, sess)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, sess)
}
