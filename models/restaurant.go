package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is the tenancy boundary: every scoped table carries a
// RestaurantID foreign key and every query filters by it.
type Restaurant struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`

	// Settings holds currency, timezone, taxRate, businessHours,
	// lowStockAlerts and alertPhone.
	Settings JSONB `gorm:"type:jsonb;default:'{}'" json:"settings"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Users          []User          `gorm:"foreignKey:RestaurantID" json:"-"`
	InventoryItems []InventoryItem `gorm:"foreignKey:RestaurantID" json:"-"`
	Orders         []Order         `gorm:"foreignKey:RestaurantID" json:"-"`
	CashCloses     []CashClose     `gorm:"foreignKey:RestaurantID" json:"-"`

	gorm.Model
}

func DefaultRestaurantSettings() JSONB {
	return JSONB{
		"currency": "USD",
		"timezone": "UTC",
		"taxRate":  0.0,
		"businessHours": map[string]interface{}{
			"monday":    map[string]interface{}{"open": "09:00", "close": "22:00", "closed": false},
			"tuesday":   map[string]interface{}{"open": "09:00", "close": "22:00", "closed": false},
			"wednesday": map[string]interface{}{"open": "09:00", "close": "22:00", "closed": false},
			"thursday":  map[string]interface{}{"open": "09:00", "close": "22:00", "closed": false},
			"friday":    map[string]interface{}{"open": "09:00", "close": "23:00", "closed": false},
			"saturday":  map[string]interface{}{"open": "10:00", "close": "23:00", "closed": false},
			"sunday":    map[string]interface{}{"open": "10:00", "close": "21:00", "closed": true},
		},
		"lowStockAlerts": false,
		"alertPhone":     "",
	}
}
