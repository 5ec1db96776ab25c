package services

import (
	"errors"
	"restropos-backend/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMakeOrderLine(t *testing.T) {
	item := models.InventoryItem{
		ID:           uuid.New(),
		Name:         "Espresso beans",
		Quantity:     10,
		CostPrice:    800,
		SellingPrice: 1500,
	}

	tests := []struct {
		name     string
		quantity int
		wantErr  error
	}{
		{name: "within stock", quantity: 10},
		{name: "partial stock", quantity: 3},
		{name: "exceeds stock", quantity: 11, wantErr: ErrInsufficientStock},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			line, err := makeOrderLine(&item, testCase.quantity)

			if testCase.wantErr != nil {
				assert.True(t, errors.Is(err, testCase.wantErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, item.ID, line.InventoryItemID)
			assert.Equal(t, item.Name, line.Name)
			assert.Equal(t, testCase.quantity, line.Quantity)
			assert.Equal(t, item.SellingPrice, line.UnitPrice)
			assert.Equal(t, item.CostPrice, line.UnitCost)
			assert.Equal(t, float64(testCase.quantity)*item.SellingPrice, line.Total)
		})
	}
}

func TestMakeOrderLineSnapshotsPrices(t *testing.T) {
	item := models.InventoryItem{ID: uuid.New(), Name: "Burger patty", Quantity: 20, SellingPrice: 900, CostPrice: 400}

	line, err := makeOrderLine(&item, 2)
	assert.NoError(t, err)

	// Later price changes on the inventory item must not affect the line.
	item.SellingPrice = 1200
	item.CostPrice = 600

	assert.Equal(t, 900.0, line.UnitPrice)
	assert.Equal(t, 400.0, line.UnitCost)
	assert.Equal(t, 1800.0, line.Total)
}

func TestStockEffect(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		decremented *time.Time
		newStatus   string
		want        int
	}{
		{name: "first move into preparing decrements", newStatus: models.OrderStatusPreparing, want: -1},
		{name: "first move into delivered decrements", newStatus: models.OrderStatusDelivered, want: -1},
		{name: "delivered after decrement moves nothing", decremented: &now, newStatus: models.OrderStatusDelivered, want: 0},
		{name: "confirmed never touches stock", newStatus: models.OrderStatusConfirmed, want: 0},
		{name: "ready never touches stock", newStatus: models.OrderStatusReady, want: 0},
		{name: "cancel after decrement restores", decremented: &now, newStatus: models.OrderStatusCancelled, want: 1},
		{name: "cancel before decrement restores nothing", newStatus: models.OrderStatusCancelled, want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order := models.Order{InventoryDecrementedAt: testCase.decremented}

			assert.Equal(t, testCase.want, stockEffect(&order, testCase.newStatus))
		})
	}
}

func TestCancelRestoresExactlyOnce(t *testing.T) {
	now := time.Now()
	order := models.Order{InventoryDecrementedAt: &now}

	// First cancellation restores and clears the decrement marker.
	assert.Equal(t, 1, stockEffect(&order, models.OrderStatusCancelled))
	order.InventoryDecrementedAt = nil

	// A repeated cancellation finds no decrement on record and moves nothing.
	assert.Equal(t, 0, stockEffect(&order, models.OrderStatusCancelled))
}

func TestDecrementHappensOnce(t *testing.T) {
	order := models.Order{}
	now := time.Now()

	// pending -> preparing decrements and stamps the marker.
	assert.Equal(t, -1, stockEffect(&order, models.OrderStatusPreparing))
	order.InventoryDecrementedAt = &now

	// preparing -> delivered must not decrement a second time.
	assert.Equal(t, 0, stockEffect(&order, models.OrderStatusDelivered))
}
