package catalog

import "github.com/DhaatuTheGamer/seamless-qr-dining/models"

var menuCategories = []models.CategoryDescriptor{
	{ID: models.CategoryStarters, Label: "Starters"},
	{ID: models.CategoryMains, Label: "Mains"},
	{ID: models.CategoryDesserts, Label: "Desserts"},
	{ID: models.CategoryDrinks, Label: "Drinks"},
}

var menuItems = []models.MenuItem{
	// Starters
	{
		ID:          "s1",
		Name:        "Truffle Arancini",
		Description: "Crispy risotto balls infused with black truffle, served with garlic aioli.",
		Price:       12,
		Category:    models.CategoryStarters,
		Image:       "https://images.unsplash.com/photo-1541529086526-db283c563270?auto=format&fit=crop&w=800&q=80",
		Dietary:     []models.DietaryTag{models.DietaryVegan},
		Available:   true,
	},
	{
		ID:          "s2",
		Name:        "Burrata & Heirloom Tomato",
		Description: "Fresh burrata with basil pesto, balsamic glaze, and toasted pine nuts.",
		Price:       16,
		Category:    models.CategoryStarters,
		Image:       "https://images.unsplash.com/photo-1529312266912-b33cf6227e24?auto=format&fit=crop&w=800&q=80",
		Dietary:     []models.DietaryTag{models.DietaryGlutenFree},
		Available:   true,
	},

	// Mains
	{
		ID:          "m1",
		Name:        "Wagyu Beef Burger",
		Description: "Premium wagyu patty, brioche bun, aged cheddar, caramelized onions, and truffle mayo.",
		Price:       24,
		Category:    models.CategoryMains,
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&q=80",
		Available:   true,
	},
	{
		ID:          "m2",
		Name:        "Miso Glazed Salmon",
		Description: "Pan-seared salmon fillet with miso glaze, served with bok choy and jasmine rice.",
		Price:       28,
		Category:    models.CategoryMains,
		Image:       "https://images.unsplash.com/photo-1467003909585-2f8a7270028d?auto=format&fit=crop&w=800&q=80",
		Dietary:     []models.DietaryTag{models.DietaryGlutenFree},
		Available:   true,
	},
	{
		ID:          "m3",
		Name:        "Wild Mushroom Risotto",
		Description: "Creamy arborio rice with porcini mushrooms, parmesan, and truffle oil.",
		Price:       22,
		Category:    models.CategoryMains,
		Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?auto=format&fit=crop&w=800&q=80",
		Dietary:     []models.DietaryTag{models.DietaryGlutenFree, models.DietaryVegan},
		Available:   true,
	},

	// Desserts
	{
		ID:          "d1",
		Name:        "Dark Chocolate Fondant",
		Description: "Molten center chocolate cake served with vanilla bean ice cream.",
		Price:       14,
		Category:    models.CategoryDesserts,
		Image:       "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?auto=format&fit=crop&w=800&q=80",
		Available:   true,
	},
	{
		ID:          "d2",
		Name:        "Lemon Basil Tart",
		Description: "Zesty lemon curd tart with a hint of basil, topped with italian meringue.",
		Price:       12,
		Category:    models.CategoryDesserts,
		Image:       "https://images.unsplash.com/photo-1519915028121-7d3463d20b13?auto=format&fit=crop&w=800&q=80",
		Available:   true,
	},

	// Drinks
	{
		ID:          "dr1",
		Name:        "Signature Old Fashioned",
		Description: "Bourbon, smoked maple syrup, angostura bitters, orange peel.",
		Price:       18,
		Category:    models.CategoryDrinks,
		Image:       "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?auto=format&fit=crop&w=800&q=80",
		Dietary:     []models.DietaryTag{models.DietaryAlcoholic},
		Available:   true,
	},
	{
		ID:          "dr2",
		Name:        "Yuzu & Mint Mocktail",
		Description: "Refreshing yuzu juice, fresh mint, sparkling water, and lime.",
		Price:       10,
		Category:    models.CategoryDrinks,
		Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&w=800&q=80",
		Dietary:     []models.DietaryTag{models.DietaryVegan, models.DietaryGlutenFree},
		Available:   true,
	},
}
