package models

// Category groups menu items on the customer menu. The set is fixed; the
// ordering of AllCategories is the display order.
type Category string

const (
	CategoryStarters Category = "starters"
	CategoryMains    Category = "mains"
	CategoryDesserts Category = "desserts"
	CategoryDrinks   Category = "drinks"
)

var AllCategories = []Category{
	CategoryStarters,
	CategoryMains,
	CategoryDesserts,
	CategoryDrinks,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryStarters, CategoryMains, CategoryDesserts, CategoryDrinks:
		return true
	}
	return false
}

// CategoryDescriptor pairs a category id with its display label.
type CategoryDescriptor struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

// DietaryTag flags a menu item (vegan, gluten-free, ...).
type DietaryTag string

const (
	DietaryVegan      DietaryTag = "vegan"
	DietaryGlutenFree DietaryTag = "gf"
	DietaryAlcoholic  DietaryTag = "alcoholic"
	DietarySpicy      DietaryTag = "spicy"
)

// MenuItem is immutable reference data, loaded once at startup and never
// mutated afterwards.
type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    Category     `json:"category"`
	Image       string       `json:"image"`
	Dietary     []DietaryTag `json:"dietary,omitempty"`
	Available   bool         `json:"available"`
}
