package models

// ServiceRequestType is what the customer is asking for.
type ServiceRequestType string

const (
	ServiceWater  ServiceRequestType = "water"
	ServiceBill   ServiceRequestType = "bill"
	ServiceHelp   ServiceRequestType = "help"
	ServiceCustom ServiceRequestType = "custom"
)

func (t ServiceRequestType) Valid() bool {
	switch t {
	case ServiceWater, ServiceBill, ServiceHelp, ServiceCustom:
		return true
	}
	return false
}

type ServiceRequestStatus string

const (
	RequestPending ServiceRequestStatus = "pending"
	RequestDone    ServiceRequestStatus = "done"
)

// ServiceRequest is a table-side call for staff attention. Resolving a
// request deletes it from the collection; there is no soft-delete.
type ServiceRequest struct {
	ID        string               `json:"id"`
	TableID   string               `json:"tableId"`
	Type      ServiceRequestType   `json:"type"`
	Status    ServiceRequestStatus `json:"status"`
	Timestamp int64                `json:"timestamp"`
	Message   string               `json:"message,omitempty"`
}
