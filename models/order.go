package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Cancelled is reachable from any non-terminal state; the
// system deliberately accepts any valid status value regardless of the
// current one (manual corrections are allowed).
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order types
const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeout  = "takeout"
	OrderTypeDelivery = "delivery"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Payment methods
const (
	PayMethodCash     = "cash"
	PayMethodCard     = "card"
	PayMethodTransfer = "transfer"
)

// OrderCustomer is embedded in the order row.
type OrderCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Table   string `json:"table"`   // dine-in
	Address string `json:"address"` // delivery
}

type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null" json:"restaurantId"`

	// Date-based prefix plus a random suffix; not guaranteed globally unique.
	OrderNumber string `gorm:"index;not null" json:"orderNumber"`

	Customer OrderCustomer `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Type     string        `gorm:"type:varchar(20);default:'dine_in'" json:"type"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	Subtotal float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax      float64 `gorm:"type:decimal(10,2);default:0.0" json:"tax"`
	Discount float64 `gorm:"type:decimal(10,2);default:0.0" json:"discount"`
	Total    float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	Status        string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus string `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	PaymentMethod string `gorm:"type:varchar(20);default:'cash'" json:"paymentMethod"`
	Notes         string `json:"notes"`

	// Set at most once per order; gates whether a cancellation must put the
	// ordered quantities back into inventory.
	InventoryDecrementedAt *time.Time `json:"inventoryDecrementedAt"`

	CompletedAt        *time.Time `json:"completedAt"`
	PreparationMinutes int        `gorm:"default:0" json:"preparationMinutes"`

	CreatedByUserID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"createdByUserId"`
	AssignedToUserID *uuid.UUID `gorm:"type:uuid;index" json:"assignedToUserId"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	gorm.Model
}

// OrderItem is a snapshot of the inventory item at order creation time.
// Later price or cost changes never touch existing orders.
type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID         uuid.UUID `gorm:"type:uuid;index;not null" json:"orderId"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;index;not null" json:"inventoryItemId"`

	Name      string  `gorm:"not null" json:"name"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	UnitCost  float64 `gorm:"type:decimal(10,2);default:0.0" json:"unitCost"`
	Total     float64 `gorm:"type:decimal(10,2);not null" json:"total"`
}

// RecalcTotals recomputes the per-line totals and the order level
// subtotal/total. Callers invoke it before every save that could have
// touched items, tax or discount.
func (o *Order) RecalcTotals() {
	var subtotal float64
	for idx := range o.Items {
		item := &o.Items[idx]
		item.Total = float64(item.Quantity) * item.UnitPrice
		subtotal += item.Total
	}
	o.Subtotal = subtotal
	o.Total = o.Subtotal + o.Tax - o.Discount
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidOrderType(orderType string) bool {
	switch orderType {
	case OrderTypeDineIn, OrderTypeTakeout, OrderTypeDelivery:
		return true
	}
	return false
}
