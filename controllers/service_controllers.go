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

type ServiceRequestController struct {
	Store *store.Store
	Hub   *kds.Hub
}

func NewServiceRequestController(st *store.Store, hub *kds.Hub) *ServiceRequestController {
	return &ServiceRequestController{Store: st, Hub: hub}
}

// RequestService -> file a pending request for the session's table
func (sc *ServiceRequestController) RequestService(c *gin.Context) {
	type ReqBody struct {
		TableID string                    `json:"tableId"`
		Type    models.ServiceRequestType `json:"type" binding:"required"`
		Message string                    `json:"message"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !body.Type.Valid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown service request type"))
		return
	}
	if body.TableID == "" {
		body.TableID = c.GetString("table_id")
	}
	if body.TableID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no table for this request"))
		return
	}

	request := sc.Store.RequestService(c.Request.Context(), body.TableID, body.Type, body.Message)
	sc.Hub.BroadcastServiceRequest(request)
	utils.RespondJSON(c, http.StatusCreated, "Service request sent", request)
}

// GetServiceRequests -> open requests, newest first; ?table_id= filters
func (sc *ServiceRequestController) GetServiceRequests(c *gin.Context) {
	if tableID := c.Query("table_id"); tableID != "" {
		utils.RespondJSON(c, http.StatusOK, "Service requests", sc.Store.ServiceRequestsByTable(tableID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service requests", sc.Store.ServiceRequests())
}

// ResolveServiceRequest -> delete the request. Resolving an id twice is
// safe; the second call just reports it gone.
func (sc *ServiceRequestController) ResolveServiceRequest(c *gin.Context) {
	requestID := c.Param("request_id")
	if sc.Store.ResolveServiceRequest(c.Request.Context(), requestID) {
		sc.Hub.BroadcastServiceResolved(requestID)
	}
	utils.RespondJSON(c, http.StatusOK, "Service request resolved", gin.H{
		"id": requestID,
	})
}
