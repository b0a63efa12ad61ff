package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

// Event types
const (
	EventOrderUpdate     = "order_update"
	EventPaymentUpdate   = "payment_update"
	EventServiceRequest  = "service_request"
	EventServiceResolved = "service_request_resolved"
	EventStaffNotif      = "staff_notification"
	EventDashboardUpdate = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected kitchen client (staff, admin) and broadcasts
// store events to all of them.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// RegisterClient adds a connection to the set with its role.
func (h *Hub) RegisterClient(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// UnregisterClient drops a connection.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate -> a new or changed order.
func (h *Hub) BroadcastOrderUpdate(order models.Order) {
	h.broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastPaymentUpdate -> an order's payment flag flipped.
func (h *Hub) BroadcastPaymentUpdate(order models.Order) {
	h.broadcast(Message{
		Event: EventPaymentUpdate,
		Data:  order,
	})
}

// BroadcastServiceRequest -> a new service request.
func (h *Hub) BroadcastServiceRequest(request models.ServiceRequest) {
	h.broadcast(Message{
		Event: EventServiceRequest,
		Data:  request,
	})
}

// BroadcastServiceResolved -> a service request was resolved and removed.
func (h *Hub) BroadcastServiceResolved(requestID string) {
	h.broadcast(Message{
		Event: EventServiceResolved,
		Data: map[string]interface{}{
			"id": requestID,
		},
	})
}

// BroadcastStaffNotification -> a toast for staff screens.
func (h *Hub) BroadcastStaffNotification(message string) {
	h.broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

// BroadcastDashboardUpdate -> full dashboard refresh payload.
func (h *Hub) BroadcastDashboardUpdate(data interface{}) {
	h.broadcast(Message{
		Event: EventDashboardUpdate,
		Data:  data,
	})
}

func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, role := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending %s to %s client: %v", msg.Event, role, err)
			continue
		}
	}
}
