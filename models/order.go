package models

// OrderStatus is the order lifecycle: pending -> preparing -> ready ->
// delivered, with completed as a separate terminal used by some flows. The
// store does not enforce transitions; any status may overwrite any other.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCompleted OrderStatus = "completed"
)

var AllOrderStatuses = []OrderStatus{
	OrderPending,
	OrderPreparing,
	OrderReady,
	OrderDelivered,
	OrderCompleted,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderDelivered, OrderCompleted:
		return true
	}
	return false
}

// Order is created at checkout from a snapshot of the cart. Items and Total
// are fixed at placement time and never recomputed; orders are retained
// indefinitely as history.
type Order struct {
	ID           string      `json:"id"`
	TableID      string      `json:"tableId"`
	Items        []CartItem  `json:"items"`
	Status       OrderStatus `json:"status"`
	Timestamp    int64       `json:"timestamp"`
	Total        float64     `json:"total"`
	IsPaid       bool        `json:"isPaid"`
	CustomerName string      `json:"customerName,omitempty"`
}

// ShortID -> first four characters of the id, used in notifications.
func (o Order) ShortID() string {
	if len(o.ID) < 4 {
		return o.ID
	}
	return o.ID[:4]
}
