package realtime

// Event is an advisory notification for UI refresh. Domain services return
// the events an operation produced; the controller hands them to the
// publisher after the write has committed.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
	EventOrderDeleted       = "order_deleted"

	EventInventoryCreated = "inventory_created"
	EventInventoryUpdated = "inventory_updated"
	EventInventoryDeleted = "inventory_deleted"

	EventCashCloseOpened       = "cashclose_opened"
	EventCashCloseClosed       = "cashclose_closed"
	EventCashCloseVerified     = "cashclose_verified"
	EventCashCloseExpenseAdded = "cashclose_expense_added"
	EventCashCloseRestored     = "cashclose_restored"

	EventDayEnded = "day_ended"
)

func NewEvent(eventType string, payload interface{}) Event {
	return Event{Type: eventType, Payload: payload}
}
