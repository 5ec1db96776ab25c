package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DaySummary is the archive row produced by the day-end operation. It is
// derived data: the orders it summarizes are deactivated, not deleted, so it
// can always be rebuilt.
type DaySummary struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null" json:"restaurantId"`

	Date time.Time `gorm:"not null;index" json:"date"`

	OrderCount     int     `gorm:"default:0" json:"orderCount"`
	ArchivedOrders int     `gorm:"default:0" json:"archivedOrders"`
	TotalRevenue   float64 `gorm:"type:decimal(12,2);default:0.0" json:"totalRevenue"`

	// Histograms kept as JSONB so the shape can follow the enums.
	StatusBreakdown  JSONB `gorm:"type:jsonb;default:'{}'" json:"statusBreakdown"`
	PaymentBreakdown JSONB `gorm:"type:jsonb;default:'{}'" json:"paymentBreakdown"`

	gorm.Model
}
