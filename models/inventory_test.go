package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryRecalcDerived(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		minQuantity   int
		costPrice     float64
		wantValue     float64
		wantLowStock  bool
	}{
		{
			name:         "quantity at threshold is low stock",
			quantity:     5,
			minQuantity:  5,
			costPrice:    100,
			wantValue:    500,
			wantLowStock: true,
		},
		{
			name:         "above threshold after restock",
			quantity:     15,
			minQuantity:  5,
			costPrice:    100,
			wantValue:    1500,
			wantLowStock: false,
		},
		{
			name:         "zero quantity",
			quantity:     0,
			minQuantity:  0,
			costPrice:    250,
			wantValue:    0,
			wantLowStock: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			item := InventoryItem{
				Quantity:    testCase.quantity,
				MinQuantity: testCase.minQuantity,
				CostPrice:   testCase.costPrice,
			}

			item.RecalcDerived()

			assert.Equal(t, testCase.wantValue, item.TotalValue)
			assert.Equal(t, testCase.wantLowStock, item.IsLowStock)
		})
	}
}

func TestInventoryRestockClearsLowStock(t *testing.T) {
	item := InventoryItem{Quantity: 5, MinQuantity: 5, CostPrice: 10}
	item.RecalcDerived()
	assert.True(t, item.IsLowStock)

	item.Quantity += 10
	item.RecalcDerived()

	assert.Equal(t, 15, item.Quantity)
	assert.False(t, item.IsLowStock)
}

func TestValidInventoryEnums(t *testing.T) {
	assert.True(t, ValidInventoryCategory(CategoryFood))
	assert.True(t, ValidInventoryCategory(CategoryBeverage))
	assert.False(t, ValidInventoryCategory("electronics"))

	assert.True(t, ValidInventoryUnit(UnitKg))
	assert.True(t, ValidInventoryUnit(UnitPiece))
	assert.False(t, ValidInventoryUnit("gallon"))
}
