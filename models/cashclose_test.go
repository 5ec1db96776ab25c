package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCashCloseRecalcTotals(t *testing.T) {
	tests := []struct {
		name          string
		salesTotal    float64
		expenses      []CashExpense
		wantExpenses  float64
		wantNetSales  float64
	}{
		{
			name:         "no expenses",
			salesTotal:   120000,
			wantExpenses: 0,
			wantNetSales: 120000,
		},
		{
			name:       "multiple expenses",
			salesTotal: 120000,
			expenses: []CashExpense{
				{Description: "produce", Amount: 15000},
				{Description: "gas refill", Amount: 5000},
			},
			wantExpenses: 20000,
			wantNetSales: 100000,
		},
		{
			name: "expenses exceed sales",
			expenses: []CashExpense{
				{Description: "repairs", Amount: 30000},
			},
			wantExpenses: 30000,
			wantNetSales: -30000,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cc := CashClose{
				SalesTotal: testCase.salesTotal,
				Expenses:   testCase.expenses,
			}

			cc.RecalcTotals()

			assert.Equal(t, testCase.wantExpenses, cc.TotalExpenses)
			assert.Equal(t, testCase.wantNetSales, cc.NetSales)
		})
	}
}

func TestValidShift(t *testing.T) {
	for _, shift := range []string{ShiftMorning, ShiftAfternoon, ShiftNight, ShiftFullDay} {
		assert.True(t, ValidShift(shift), shift)
	}
	assert.False(t, ValidShift("graveyard"))
}
