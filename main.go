package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sarthak743/FlashDine/catalog"
	"github.com/sarthak743/FlashDine/routes"
	"github.com/sarthak743/FlashDine/scanner"
	"github.com/sarthak743/FlashDine/store"
)

func main() {
	log.Println("✅ Starting FlashDine...")

	// Load environment variables
	_ = godotenv.Load()

	// Session store: all state is in-memory and resets on restart.
	sess := store.New()
	sess.InitializeStock(catalog.MenuItems)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Scanner: brightness-heuristic placeholder, see scanner package.
	det := scanner.BrightnessDetector{}

	// Optional retention dir for scan frames that produced a hit.
	uploadDir := os.Getenv("UPLOAD_DIR")

	// Setup routes
	routes.SetupRoutes(r, sess, det, uploadDir)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
