package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhaatuTheGamer/seamless-qr-dining/toast"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

type NotificationController struct {
	Queue *toast.Queue
}

func NewNotificationController(queue *toast.Queue) *NotificationController {
	return &NotificationController{Queue: queue}
}

// GetNotifications -> toasts that have not expired yet
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Active notifications", nc.Queue.Active())
}

// DismissNotification -> drop a toast before its timer does
func (nc *NotificationController) DismissNotification(c *gin.Context) {
	nc.Queue.Remove(c.Param("notification_id"))
	utils.RespondJSON(c, http.StatusOK, "Notification dismissed", nil)
}
