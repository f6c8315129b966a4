package catalog

import "github.com/sarthak743/FlashDine/models"

// MenuItems is the static menu. Prices are whole rupees, prep times in
// minutes. Stock flags here are catalog defaults; live availability is
// tracked by the session store's override map.
var MenuItems = []models.MenuItem{
	// Snacks
	{ID: "samosa", Name: "Samosa", Description: "Crispy pastry stuffed with spiced potatoes and peas", Price: 20, Category: models.CategorySnacks, Image: "/images/samosa.jpg", InStock: true, PrepTime: 5, IsPopular: true},
	{ID: "vada_pav", Name: "Vada Pav", Description: "Mumbai-style potato fritter in a soft bun", Price: 30, Category: models.CategorySnacks, Image: "/images/vada_pav.jpg", InStock: true, PrepTime: 8},
	{ID: "paneer_pakora", Name: "Paneer Pakora", Description: "Cottage cheese fritters with mint chutney", Price: 60, Category: models.CategorySnacks, Image: "/images/paneer_pakora.jpg", InStock: true, PrepTime: 10},
	{ID: "french_fries", Name: "French Fries", Description: "Golden fries tossed with peri-peri seasoning", Price: 80, Category: models.CategorySnacks, Image: "/images/french_fries.jpg", InStock: true, PrepTime: 10, IsPopular: true},

	// Meals
	{ID: "masala_dosa", Name: "Masala Dosa", Description: "Crisp rice crepe with spiced potato filling, sambar and chutney", Price: 90, Category: models.CategoryMeals, Image: "/images/masala_dosa.jpg", InStock: true, PrepTime: 15, IsPopular: true},
	{ID: "paneer_butter_masala", Name: "Paneer Butter Masala", Description: "Paneer simmered in a rich tomato-butter gravy, served with naan", Price: 180, Category: models.CategoryMeals, Image: "/images/paneer_butter_masala.jpg", InStock: true, PrepTime: 20, IsPopular: true},
	{ID: "veg_biryani", Name: "Veg Biryani", Description: "Fragrant basmati rice layered with vegetables and raita", Price: 150, Category: models.CategoryMeals, Image: "/images/veg_biryani.jpg", InStock: true, PrepTime: 25},
	{ID: "chole_bhature", Name: "Chole Bhature", Description: "Spicy chickpea curry with fluffy fried bread", Price: 110, Category: models.CategoryMeals, Image: "/images/chole_bhature.jpg", InStock: true, PrepTime: 18},

	// Beverages
	{ID: "masala_chai", Name: "Masala Chai", Description: "Strong tea brewed with milk and spices", Price: 15, Category: models.CategoryBeverages, Image: "/images/masala_chai.jpg", InStock: true, PrepTime: 5, IsPopular: true},
	{ID: "cold_coffee", Name: "Cold Coffee", Description: "Blended iced coffee topped with cream", Price: 70, Category: models.CategoryBeverages, Image: "/images/cold_coffee.jpg", InStock: true, PrepTime: 7},
	{ID: "fresh_lime_soda", Name: "Fresh Lime Soda", Description: "Sweet and salty lime soda, served chilled", Price: 40, Category: models.CategoryBeverages, Image: "/images/fresh_lime_soda.jpg", InStock: true, PrepTime: 4},
	{ID: "mango_lassi", Name: "Mango Lassi", Description: "Thick yogurt smoothie with alphonso mango", Price: 60, Category: models.CategoryBeverages, Image: "/images/mango_lassi.jpg", InStock: true, PrepTime: 5},

	// Desserts
	{ID: "gulab_jamun", Name: "Gulab Jamun", Description: "Soft milk dumplings soaked in rose syrup (2 pcs)", Price: 50, Category: models.CategoryDesserts, Image: "/images/gulab_jamun.jpg", InStock: true, PrepTime: 5},
	{ID: "rasmalai", Name: "Rasmalai", Description: "Cottage cheese discs in saffron milk", Price: 70, Category: models.CategoryDesserts, Image: "/images/rasmalai.jpg", InStock: true, PrepTime: 5},
	{ID: "chocolate_brownie", Name: "Chocolate Brownie", Description: "Warm walnut brownie with vanilla ice cream", Price: 90, Category: models.CategoryDesserts, Image: "/images/chocolate_brownie.jpg", InStock: true, PrepTime: 8, IsPopular: true},
}

// MenuItemByID returns the catalog entry for id. The second return is
// false when the id is unknown.
func MenuItemByID(id string) (models.MenuItem, bool) {
	for _, item := range MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
