package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cash close statuses
const (
	CashCloseOpen     = "open"
	CashCloseClosed   = "closed"
	CashCloseVerified = "verified"
)

// Shifts. At most one open cash close per shift per restaurant.
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
	ShiftFullDay   = "full_day"
)

type CashClose struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null" json:"restaurantId"`

	Date  time.Time `gorm:"not null" json:"date"`
	Shift string    `gorm:"type:varchar(20);not null" json:"shift"`

	OpeningCash  float64 `gorm:"type:decimal(10,2);not null" json:"openingCash"`
	ClosingCash  float64 `gorm:"type:decimal(10,2);default:0.0" json:"closingCash"`
	ExpectedCash float64 `gorm:"type:decimal(10,2);default:0.0" json:"expectedCash"`
	Difference   float64 `gorm:"type:decimal(10,2);default:0.0" json:"difference"`

	SalesCash     float64 `gorm:"type:decimal(10,2);default:0.0" json:"salesCash"`
	SalesCard     float64 `gorm:"type:decimal(10,2);default:0.0" json:"salesCard"`
	SalesTransfer float64 `gorm:"type:decimal(10,2);default:0.0" json:"salesTransfer"`
	SalesTotal    float64 `gorm:"type:decimal(10,2);default:0.0" json:"salesTotal"`

	Expenses []CashExpense `gorm:"foreignKey:CashCloseID" json:"expenses"`

	// Derived, recomputed via RecalcTotals before every save.
	TotalExpenses float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalExpenses"`
	NetSales      float64 `gorm:"type:decimal(10,2);default:0.0" json:"netSales"`

	Status string `gorm:"type:varchar(20);default:'open'" json:"status"`
	Notes  string `json:"notes"`

	OpenedByUserID   uuid.UUID  `gorm:"type:uuid;not null" json:"openedByUserId"`
	ClosedByUserID   *uuid.UUID `gorm:"type:uuid" json:"closedByUserId"`
	VerifiedByUserID *uuid.UUID `gorm:"type:uuid" json:"verifiedByUserId"`

	ClosedAt   *time.Time `json:"closedAt"`
	VerifiedAt *time.Time `json:"verifiedAt"`

	gorm.Model
}

type CashExpense struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CashCloseID uuid.UUID `gorm:"type:uuid;index;not null" json:"cashCloseId"`

	Description string  `gorm:"not null" json:"description"`
	Amount      float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    string  `gorm:"type:varchar(30);default:'general'" json:"category"`
	ReceiptRef  string  `json:"receiptRef"`

	CreatedAt time.Time `json:"createdAt"`
}

// RecalcTotals recomputes totalExpenses and netSales. It runs before every
// persistence of a cash close, independent of which operation triggered the
// save.
func (cc *CashClose) RecalcTotals() {
	var total float64
	for _, e := range cc.Expenses {
		total += e.Amount
	}
	cc.TotalExpenses = total
	cc.NetSales = cc.SalesTotal - cc.TotalExpenses
}

func ValidShift(shift string) bool {
	switch shift {
	case ShiftMorning, ShiftAfternoon, ShiftNight, ShiftFullDay:
		return true
	}
	return false
}
