// Package catalog holds the static menu: a fixed list of items grouped into
// categories. It is read-only reference data; nothing in the system mutates
// it after startup.
package catalog

import "github.com/DhaatuTheGamer/seamless-qr-dining/models"

type Catalog struct {
	items      []models.MenuItem
	categories []models.CategoryDescriptor
	byID       map[string]models.MenuItem
}

// New builds a catalog over the given items and category descriptors.
func New(items []models.MenuItem, categories []models.CategoryDescriptor) *Catalog {
	byID := make(map[string]models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{
		items:      items,
		categories: categories,
		byID:       byID,
	}
}

// Default returns the catalog backed by the built-in menu data.
func Default() *Catalog {
	return New(menuItems, menuCategories)
}

// Items returns all menu items in display order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsByCategory filters items to one category, keeping display order.
func (c *Catalog) ItemsByCategory(category models.Category) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Find looks an item up by id.
func (c *Catalog) Find(id string) (models.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Categories returns the ordered category descriptors.
func (c *Catalog) Categories() []models.CategoryDescriptor {
	out := make([]models.CategoryDescriptor, len(c.categories))
	copy(out, c.categories)
	return out
}
