package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockAlertLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index;not null"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;index;not null"`

	ItemName   string `gorm:"not null"`
	Quantity   int
	Channel    string `gorm:"type:varchar(20)"` // sms
	Status     string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMsg   string `gorm:"type:text"`
	SentAt     time.Time

	gorm.Model
}

func (l *StockAlertLog) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = uuid.New()
	return
}
