package auth

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// defaultAdminPassword keeps the demo usable when ADMIN_PASSWORD is not
// configured. Set the env var for anything beyond local demos.
const defaultAdminPassword = "admin123"

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginHandler checks the shared admin secret and issues a token.
// Failures get a single static message, nothing more specific.
func AdminLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		expected := os.Getenv("ADMIN_PASSWORD")
		if expected == "" {
			expected = defaultAdminPassword
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(expected)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}

		token, err := IssueAdminToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "role": RoleAdmin})
	}
}
