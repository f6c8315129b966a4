package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/admin-login", auth.AdminLoginHandler())
	}
}
