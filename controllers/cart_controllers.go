package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhaatuTheGamer/seamless-qr-dining/catalog"
	"github.com/DhaatuTheGamer/seamless-qr-dining/store"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

type CartController struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

func NewCartController(st *store.Store, cat *catalog.Catalog) *CartController {
	return &CartController{Store: st, Catalog: cat}
}

// GetCart -> current cart lines plus the running total
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart", gin.H{
		"items": cc.Store.Cart(),
		"total": cc.Store.CartTotal(),
	})
}

// AddToCart -> append a new cart line for a menu item
func (cc *CartController) AddToCart(c *gin.Context) {
	type ReqBody struct {
		ItemID   string `json:"itemId" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
		Notes    string `json:"notes"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, ok := cc.Catalog.Find(body.ItemID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	if !item.Available {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu item is not available"))
		return
	}

	line := cc.Store.AddToCart(item, body.Quantity, body.Notes)
	utils.RespondJSON(c, http.StatusCreated, "Added to cart", line)
}

// UpdateCartQuantity -> add a delta to one line's quantity (floored at zero)
func (cc *CartController) UpdateCartQuantity(c *gin.Context) {
	type ReqBody struct {
		Delta int `json:"delta" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Store.UpdateCartQuantity(c.Param("cart_id"), body.Delta)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", gin.H{
		"items": cc.Store.Cart(),
		"total": cc.Store.CartTotal(),
	})
}

// RemoveFromCart -> drop one line; absent ids are a quiet no-op
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	cc.Store.RemoveFromCart(c.Param("cart_id"))
	utils.RespondJSON(c, http.StatusOK, "Removed from cart", gin.H{
		"items": cc.Store.Cart(),
		"total": cc.Store.CartTotal(),
	})
}

// ClearCart -> empty the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Store.ClearCart()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
