package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhaatuTheGamer/seamless-qr-dining/catalog"
	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

type MenuController struct {
	Catalog *catalog.Catalog
}

func NewMenuController(cat *catalog.Catalog) *MenuController {
	return &MenuController{Catalog: cat}
}

// GetMenu -> list menu items, optionally filtered by ?category=
func (mc *MenuController) GetMenu(c *gin.Context) {
	categoryParam := c.Query("category")
	if categoryParam == "" {
		utils.RespondJSON(c, http.StatusOK, "Menu items", mc.Catalog.Items())
		return
	}

	category := models.Category(categoryParam)
	if !category.Valid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown category"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", mc.Catalog.ItemsByCategory(category))
}

// GetMenuItem -> detail for one item
func (mc *MenuController) GetMenuItem(c *gin.Context) {
	item, ok := mc.Catalog.Find(c.Param("item_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetCategories -> ordered category descriptors
func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu categories", mc.Catalog.Categories())
}
