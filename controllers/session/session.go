package sessionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/auth"
	"github.com/sarthak743/FlashDine/catalog"
	"github.com/sarthak743/FlashDine/models"
	"github.com/sarthak743/FlashDine/store"
)

type StartSessionRequest struct {
	// TableID can be supplied directly (manual entry) or via QRData.
	TableID string `json:"table_id"`
	// QRData is the raw payload of a table code: "restaurant_id:table_id".
	QRData string `json:"qr_data"`
}

// StartSession binds the session to a table and restaurant, either
// from a scanned QR payload or a manually entered table number, and
// issues a dining-session token.
func StartSession(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tableID := req.TableID
		restaurant := catalog.Restaurants[catalog.DefaultRestaurantID]
		if req.QRData != "" {
			restaurant = catalog.RestaurantByQRCode(req.QRData)
			if t := catalog.TableIDFromQRCode(req.QRData); t != "" {
				tableID = t
			}
		}
		if tableID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "table_id or qr_data is required"})
			return
		}

		sess.SetTableID(tableID)
		sess.SetRestaurant(restaurant)

		sessionID, token, err := auth.IssueSessionToken(tableID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"table_id":   tableID,
			"restaurant": restaurant,
		})
	}
}

// SetCustomerDetails validates and stores the checkout identity.
// Validation errors come back per field so the form can render them
// inline.
func SetCustomerDetails(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details models.CustomerDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if errs := details.Validate(); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		sess.SetCustomerDetails(details)
		c.JSON(http.StatusOK, gin.H{"customer_details": details})
	}
}

// GetSession returns the current table, restaurant and customer state.
func GetSession(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{"table_id": sess.TableID()}
		if r, ok := sess.Restaurant(); ok {
			resp["restaurant"] = r
		}
		if d, ok := sess.CustomerDetails(); ok {
			resp["customer_details"] = d
		}
		if id := sess.CurrentOrderID(); id != "" {
			resp["current_order_id"] = id
		}
		c.JSON(http.StatusOK, resp)
	}
}
