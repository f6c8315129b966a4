package models

type Category string

const (
	CategorySnacks    Category = "snacks"
	CategoryMeals     Category = "meals"
	CategoryBeverages Category = "beverages"
	CategoryDesserts  Category = "desserts"
)

// ValidCategory reports whether s is one of the known menu categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategorySnacks, CategoryMeals, CategoryBeverages, CategoryDesserts:
		return true
	}
	return false
}

// MenuItem is an immutable catalog entry. Price is in whole rupees,
// PrepTime in minutes.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	InStock     bool     `json:"in_stock"`
	PrepTime    int      `json:"prep_time"`
	IsPopular   bool     `json:"is_popular,omitempty"`
	IsFavorite  bool     `json:"is_favorite,omitempty"`
}

// CartItem is a MenuItem plus a quantity. Quantity is always >= 1; the
// store removes the entry instead of keeping a non-positive count.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
