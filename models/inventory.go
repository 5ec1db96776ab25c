package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory categories
const (
	CategoryFood     = "food"
	CategoryBeverage = "beverage"
	CategorySupplies = "supplies"
	CategoryOther    = "other"
)

// Measurement units
const (
	UnitPiece = "unit"
	UnitKg    = "kg"
	UnitGram  = "g"
	UnitLiter = "l"
	UnitMl    = "ml"
	UnitPack  = "pack"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null" json:"restaurantId"`

	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"type:varchar(20);default:'other'" json:"category"`
	Quantity    int    `gorm:"default:0" json:"quantity"`
	MinQuantity int    `gorm:"default:0" json:"minQuantity"`
	MaxQuantity int    `gorm:"default:0" json:"maxQuantity"`
	Unit        string `gorm:"type:varchar(10);default:'unit'" json:"unit"`

	CostPrice    float64 `gorm:"type:decimal(10,2);default:0.0" json:"costPrice"`
	SellingPrice float64 `gorm:"type:decimal(10,2);default:0.0" json:"sellingPrice"`

	// Derived fields, recomputed via RecalcDerived before every save.
	TotalValue float64 `gorm:"type:decimal(12,2);default:0.0" json:"totalValue"`
	IsLowStock bool    `gorm:"default:false" json:"isLowStock"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	gorm.Model
}

// RecalcDerived recomputes totalValue and isLowStock from the current
// quantity and thresholds. Callers must invoke it before persisting any
// mutation; it is never run as a gorm hook.
func (i *InventoryItem) RecalcDerived() {
	i.TotalValue = float64(i.Quantity) * i.CostPrice
	i.IsLowStock = i.Quantity <= i.MinQuantity
}

func ValidInventoryCategory(category string) bool {
	switch category {
	case CategoryFood, CategoryBeverage, CategorySupplies, CategoryOther:
		return true
	}
	return false
}

func ValidInventoryUnit(unit string) bool {
	switch unit {
	case UnitPiece, UnitKg, UnitGram, UnitLiter, UnitMl, UnitPack:
		return true
	}
	return false
}
