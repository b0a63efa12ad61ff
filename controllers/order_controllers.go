package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhaatuTheGamer/seamless-qr-dining/kds"
	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
	"github.com/DhaatuTheGamer/seamless-qr-dining/store"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

type OrderController struct {
	Store *store.Store
	Hub   *kds.Hub
}

func NewOrderController(st *store.Store, hub *kds.Hub) *OrderController {
	return &OrderController{Store: st, Hub: hub}
}

// PlaceOrder -> turn the cart into a pending order. An empty cart is not an
// error; it just creates nothing.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	type ReqBody struct {
		TableID      string `json:"tableId"`
		CustomerName string `json:"customerName"`
		PayNow       bool   `json:"payNow"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Session claims fill in whatever the request leaves blank.
	if body.TableID == "" {
		body.TableID = c.GetString("table_id")
	}
	if body.CustomerName == "" {
		body.CustomerName = c.GetString("name")
	}
	if body.TableID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no table for this order"))
		return
	}

	order, ok := oc.Store.PlaceOrder(c.Request.Context(), body.TableID, body.CustomerName, body.PayNow)
	if !ok {
		utils.RespondJSON(c, http.StatusOK, "Cart is empty, nothing ordered", nil)
		return
	}

	oc.Hub.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetAllOrders -> every order, newest first; ?table_id= filters to one table
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	if tableID := c.Query("table_id"); tableID != "" {
		utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Store.OrdersByTable(tableID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Store.Orders())
}

// GetTableOrders -> order history for the session's own table
func (oc *OrderController) GetTableOrders(c *gin.Context) {
	tableID := c.GetString("table_id")
	if tableID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no table in session"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", oc.Store.OrdersByTable(tableID))
}

// GetOrderByID -> detail for one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, ok := oc.Store.FindOrder(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> set an order's status. The value must be a known
// status, but any known status is accepted from any current one.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	type ReqBody struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !body.Status.Valid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown order status"))
		return
	}

	order, ok := oc.Store.UpdateOrderStatus(c.Request.Context(), c.Param("order_id"), body.Status)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	oc.Hub.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// ToggleOrderPayment -> flip the paid flag
func (oc *OrderController) ToggleOrderPayment(c *gin.Context) {
	order, ok := oc.Store.ToggleOrderPayment(c.Request.Context(), c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	oc.Hub.BroadcastPaymentUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Order payment toggled", order)
}

// GetKitchenSummary -> dashboard payload: orders grouped by status plus the
// open service requests.
func (oc *OrderController) GetKitchenSummary(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Kitchen summary", gin.H{
		"ordersByStatus":  oc.Store.OrdersByStatus(),
		"serviceRequests": oc.Store.ServiceRequests(),
	})
}
