package models

// MenuItem represents a single dish on the restaurant menu
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   bool     `json:"available"`
}

// Valid menu categories
const (
	CategoryAppetizer = "appetizer"
	CategoryEntree    = "entree"
	CategoryDessert   = "dessert"
	CategoryBeverage  = "beverage"
)

// Categories lists every accepted menu category, in the order they are
// reported to clients in validation messages.
var Categories = []string{CategoryAppetizer, CategoryEntree, CategoryDessert, CategoryBeverage}

// IsValidCategory reports whether the given category is one of the accepted set
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
