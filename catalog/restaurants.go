package catalog

import (
	"strings"

	"github.com/sarthak743/FlashDine/models"
)

// DefaultRestaurantID is the fallback record returned for unknown or
// malformed QR payloads.
const DefaultRestaurantID = "default"

var Restaurants = map[string]models.Restaurant{
	"default": {
		ID:              "default",
		Name:            "Campus Delights",
		Description:     "Your favorite campus dining destination",
		Cuisine:         "Multi-Cuisine",
		Rating:          4.5,
		DeliveryTimeMin: 10,
		DeliveryTimeMax: 20,
		MinOrder:        100,
	},
	"spice_house": {
		ID:              "spice_house",
		Name:            "Spice House",
		Description:     "Authentic Indian flavors with a modern twist",
		Cuisine:         "Indian",
		Rating:          4.7,
		DeliveryTimeMin: 15,
		DeliveryTimeMax: 25,
		MinOrder:        150,
	},
	"pizza_palace": {
		ID:              "pizza_palace",
		Name:            "Pizza Palace",
		Description:     "Freshly baked pizzas and Italian delights",
		Cuisine:         "Italian",
		Rating:          4.6,
		DeliveryTimeMin: 12,
		DeliveryTimeMax: 22,
		MinOrder:        200,
	},
	"fusion_hub": {
		ID:              "fusion_hub",
		Name:            "Fusion Hub",
		Description:     "East meets West with innovative dishes",
		Cuisine:         "Fusion",
		Rating:          4.4,
		DeliveryTimeMin: 20,
		DeliveryTimeMax: 30,
		MinOrder:        120,
	},
}

// RestaurantByQRCode parses a "restaurant_id:table_id" QR payload and
// returns the matching restaurant. Unknown or malformed payloads fall
// back to the default record; no error is raised.
func RestaurantByQRCode(qrData string) models.Restaurant {
	restaurantID, _, _ := strings.Cut(qrData, ":")
	if r, ok := Restaurants[restaurantID]; ok {
		return r
	}
	return Restaurants[DefaultRestaurantID]
}

// TableIDFromQRCode extracts the table segment of a QR payload. Returns
// "" when the payload has no table part.
func TableIDFromQRCode(qrData string) string {
	_, tableID, _ := strings.Cut(qrData, ":")
	return tableID
}
