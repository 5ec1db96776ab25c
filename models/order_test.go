package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderRecalcTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []OrderItem
		tax          float64
		discount     float64
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name: "single item",
			items: []OrderItem{
				{Quantity: 2, UnitPrice: 1500},
			},
			wantSubtotal: 3000,
			wantTotal:    3000,
		},
		{
			name: "multiple items with tax and discount",
			items: []OrderItem{
				{Quantity: 3, UnitPrice: 500},
				{Quantity: 1, UnitPrice: 1200},
			},
			tax:          270,
			discount:     100,
			wantSubtotal: 2700,
			wantTotal:    2870,
		},
		{
			name:         "no items",
			items:        nil,
			tax:          50,
			discount:     20,
			wantSubtotal: 0,
			wantTotal:    30,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order := Order{
				ID:       uuid.New(),
				Items:    testCase.items,
				Tax:      testCase.tax,
				Discount: testCase.discount,
			}

			order.RecalcTotals()

			assert.Equal(t, testCase.wantSubtotal, order.Subtotal)
			assert.Equal(t, testCase.wantTotal, order.Total)
		})
	}
}

func TestOrderRecalcTotalsUpdatesLineTotals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 4, UnitPrice: 250, Total: 999}, // stale line total
		},
	}

	order.RecalcTotals()

	assert.Equal(t, 1000.0, order.Items[0].Total)
	assert.Equal(t, 1000.0, order.Subtotal)
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus(""))
}

func TestValidOrderType(t *testing.T) {
	for _, orderType := range []string{OrderTypeDineIn, OrderTypeTakeout, OrderTypeDelivery} {
		assert.True(t, ValidOrderType(orderType), orderType)
	}
	assert.False(t, ValidOrderType("drive_thru"))
	assert.False(t, ValidOrderType(""))
}
