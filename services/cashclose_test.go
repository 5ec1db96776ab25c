package services

import (
	"restropos-backend/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplyClose(t *testing.T) {
	tests := []struct {
		name         string
		openingCash  float64
		expenses     []models.CashExpense
		closingCash  float64
		cardSales    float64
		systemSales  float64
		wantCash     float64
		wantExpected float64
		wantDiff     float64
		wantNetSales float64
	}{
		{
			// Two delivered orders totaling 120000, 30000 of that on card.
			name:         "shift with card sales and no expenses",
			openingCash:  50000,
			closingCash:  138000,
			cardSales:    30000,
			systemSales:  120000,
			wantCash:     90000,
			wantExpected: 140000,
			wantDiff:     -2000,
			wantNetSales: 120000,
		},
		{
			name:        "expenses reduce expected cash",
			openingCash: 10000,
			expenses: []models.CashExpense{
				{Description: "produce run", Amount: 2500},
				{Description: "cleaning", Amount: 1500},
			},
			closingCash:  26000,
			cardSales:    0,
			systemSales:  20000,
			wantCash:     20000,
			wantExpected: 26000,
			wantDiff:     0,
			wantNetSales: 16000,
		},
		{
			name:         "no sales at all",
			openingCash:  5000,
			closingCash:  5000,
			cardSales:    0,
			systemSales:  0,
			wantCash:     0,
			wantExpected: 5000,
			wantDiff:     0,
			wantNetSales: 0,
		},
		{
			name:         "card exceeds system sales leaves negative cash",
			openingCash:  1000,
			closingCash:  1000,
			cardSales:    5000,
			systemSales:  4000,
			wantCash:     -1000,
			wantExpected: 0,
			wantDiff:     1000,
			wantNetSales: 4000,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cc := &models.CashClose{
				OpeningCash:  testCase.openingCash,
				ExpectedCash: testCase.openingCash,
				Expenses:     testCase.expenses,
				Status:       models.CashCloseOpen,
			}

			applyClose(cc, testCase.closingCash, testCase.cardSales, testCase.systemSales)

			assert.Equal(t, testCase.systemSales, cc.SalesTotal)
			assert.Equal(t, testCase.cardSales, cc.SalesCard)
			assert.Equal(t, testCase.wantCash, cc.SalesCash)
			assert.Equal(t, testCase.wantExpected, cc.ExpectedCash)
			assert.Equal(t, testCase.closingCash, cc.ClosingCash)
			assert.Equal(t, testCase.wantDiff, cc.Difference)
			assert.Equal(t, testCase.wantNetSales, cc.NetSales)
		})
	}
}

func TestApplyCloseDifferenceFormula(t *testing.T) {
	// difference must be closingCash - expectedCash, never the raw
	// (closingCash + cardSales) - systemSales intermediate.
	cc := &models.CashClose{OpeningCash: 50000, ExpectedCash: 50000}

	applyClose(cc, 138000, 30000, 120000)

	assert.Equal(t, cc.ClosingCash-cc.ExpectedCash, cc.Difference)
	assert.NotEqual(t, (cc.ClosingCash+cc.SalesCard)-cc.SalesTotal, cc.Difference)
}

func TestEnsureStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		want    string
		wantErr bool
	}{
		{name: "open record may close", status: models.CashCloseOpen, want: models.CashCloseOpen},
		{name: "closed record may not close again", status: models.CashCloseClosed, want: models.CashCloseOpen, wantErr: true},
		{name: "verified record may not close", status: models.CashCloseVerified, want: models.CashCloseOpen, wantErr: true},
		{name: "closed record may verify", status: models.CashCloseClosed, want: models.CashCloseClosed},
		{name: "open record may not verify", status: models.CashCloseOpen, want: models.CashCloseClosed, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cc := &models.CashClose{Status: testCase.status}

			err := ensureStatus(cc, testCase.want)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrInvalidState)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCloseTwiceRejected(t *testing.T) {
	cc := &models.CashClose{OpeningCash: 50000, ExpectedCash: 50000, Status: models.CashCloseOpen}

	assert.NoError(t, ensureStatus(cc, models.CashCloseOpen))
	applyClose(cc, 138000, 30000, 120000)
	cc.Status = models.CashCloseClosed

	// A second close stops at the guard; the first reconciliation stands.
	assert.ErrorIs(t, ensureStatus(cc, models.CashCloseOpen), ErrInvalidState)
	assert.Equal(t, 138000.0, cc.ClosingCash)
	assert.Equal(t, 140000.0, cc.ExpectedCash)
	assert.Equal(t, -2000.0, cc.Difference)
}

func TestApplyRestore(t *testing.T) {
	closedBy := uuid.New()
	verifiedBy := uuid.New()
	now := time.Now()

	tests := []struct {
		name   string
		status string
	}{
		{name: "restore from closed", status: models.CashCloseClosed},
		{name: "restore from verified", status: models.CashCloseVerified},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cc := &models.CashClose{
				OpeningCash:      50000,
				ClosingCash:      138000,
				ExpectedCash:     140000,
				Difference:       -2000,
				SalesCash:        90000,
				SalesCard:        30000,
				SalesTotal:       120000,
				Status:           testCase.status,
				ClosedByUserID:   &closedBy,
				ClosedAt:         &now,
				VerifiedByUserID: &verifiedBy,
				VerifiedAt:       &now,
				Expenses: []models.CashExpense{
					{Description: "ice", Amount: 800},
				},
			}

			applyRestore(cc)

			assert.Equal(t, models.CashCloseOpen, cc.Status)
			assert.Equal(t, cc.OpeningCash, cc.ExpectedCash)
			assert.Zero(t, cc.ClosingCash)
			assert.Zero(t, cc.Difference)
			assert.Zero(t, cc.SalesCash)
			assert.Zero(t, cc.SalesCard)
			assert.Zero(t, cc.SalesTotal)
			assert.Nil(t, cc.ClosedByUserID)
			assert.Nil(t, cc.ClosedAt)
			assert.Nil(t, cc.VerifiedByUserID)
			assert.Nil(t, cc.VerifiedAt)

			// Expenses survive a restore; derived totals stay consistent.
			assert.Equal(t, 800.0, cc.TotalExpenses)
			assert.Equal(t, -800.0, cc.NetSales)
		})
	}
}

func TestRestoreThenCloseAgain(t *testing.T) {
	cc := &models.CashClose{OpeningCash: 50000, ExpectedCash: 50000}

	applyClose(cc, 138000, 30000, 120000)
	applyRestore(cc)
	applyClose(cc, 140000, 30000, 120000)

	assert.Equal(t, 140000.0, cc.ClosingCash)
	assert.Equal(t, 140000.0, cc.ExpectedCash)
	assert.Zero(t, cc.Difference)
}
