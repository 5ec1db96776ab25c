package services

import (
	"errors"
	"restropos-backend/models"
	"restropos-backend/realtime"
	"restropos-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashCloseService owns the open -> closed -> verified state machine and the
// expected-vs-actual cash arithmetic.
type CashCloseService struct {
	db *gorm.DB
}

func NewCashCloseService(db *gorm.DB) *CashCloseService {
	return &CashCloseService{db: db}
}

type OpenCashCloseInput struct {
	Shift       string  `json:"shift" binding:"required,oneof=morning afternoon night full_day"`
	OpeningCash float64 `json:"openingCash" binding:"min=0"`
	Notes       string  `json:"notes"`
}

type ExpenseInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category"`
	ReceiptRef  string  `json:"receiptRef"`
}

type CloseCashCloseInput struct {
	ClosingCash float64        `json:"closingCash" binding:"min=0"`
	CardSales   float64        `json:"cardSales" binding:"min=0"`
	Expenses    []ExpenseInput `json:"expenses" binding:"dive"`
	Notes       string         `json:"notes"`
}

// Open creates a cash close for the shift. At most one open record per shift
// per restaurant at a time.
func (s *CashCloseService) Open(restaurantID, userID uuid.UUID, input OpenCashCloseInput) (*models.CashClose, []realtime.Event, error) {
	var existing models.CashClose
	err := s.db.Where("restaurant_id = ? AND shift = ? AND status = ?",
		restaurantID, input.Shift, models.CashCloseOpen).First(&existing).Error
	if err == nil {
		return nil, nil, ErrShiftAlreadyOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	cc := models.CashClose{
		ID:             uuid.New(),
		RestaurantID:   restaurantID,
		Date:           utils.BeginningOfDay(time.Now()),
		Shift:          input.Shift,
		OpeningCash:    input.OpeningCash,
		ExpectedCash:   input.OpeningCash,
		Status:         models.CashCloseOpen,
		Notes:          input.Notes,
		OpenedByUserID: userID,
	}
	cc.RecalcTotals()

	if err := s.db.Create(&cc).Error; err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventCashCloseOpened, cc)}
	return &cc, events, nil
}

// Close reconciles the shift. The system-recorded sales figure is the sum of
// today's delivered orders; reported card sales split it into cash and card.
func (s *CashCloseService) Close(restaurantID, id, userID uuid.UUID, input CloseCashCloseInput) (*models.CashClose, []realtime.Event, error) {
	cc, err := s.Get(restaurantID, id)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureStatus(cc, models.CashCloseOpen); err != nil {
		return nil, nil, err
	}

	systemSales, err := s.deliveredSalesForDay(restaurantID, cc.Date)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range input.Expenses {
		cc.Expenses = append(cc.Expenses, models.CashExpense{
			ID:          uuid.New(),
			CashCloseID: cc.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Category:    expenseCategory(e.Category),
			ReceiptRef:  e.ReceiptRef,
		})
	}

	applyClose(cc, input.ClosingCash, input.CardSales, systemSales)

	now := time.Now()
	cc.Status = models.CashCloseClosed
	cc.ClosedByUserID = &userID
	cc.ClosedAt = &now
	if input.Notes != "" {
		cc.Notes = input.Notes
	}

	if err := s.db.Save(cc).Error; err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventCashCloseClosed, cc)}
	return cc, events, nil
}

// applyClose is the reconciliation arithmetic, kept pure so it can be tested
// without a database:
//
//	sales.total    = system-recorded delivered sales
//	sales.cash     = sales.total - reported card sales
//	totalExpenses  = sum of expenses
//	expectedCash   = openingCash + sales.cash - totalExpenses
//	difference     = closingCash - expectedCash
func applyClose(cc *models.CashClose, closingCash, cardSales, systemSales float64) {
	cc.SalesTotal = systemSales
	cc.SalesCard = cardSales
	cc.SalesCash = systemSales - cardSales

	cc.RecalcTotals()

	cc.ExpectedCash = cc.OpeningCash + cc.SalesCash - cc.TotalExpenses
	cc.ClosingCash = closingCash
	cc.Difference = closingCash - cc.ExpectedCash
}

// ensureStatus is the lifecycle guard: the operation may proceed only while
// the record sits in want. Closing a closed record, verifying an open one and
// expensing after close all stop here, before any arithmetic runs.
func ensureStatus(cc *models.CashClose, want string) error {
	if cc.Status != want {
		return ErrInvalidState
	}
	return nil
}

// Verify stamps the verifier. Only a closed record can be verified.
func (s *CashCloseService) Verify(restaurantID, id, userID uuid.UUID) (*models.CashClose, []realtime.Event, error) {
	cc, err := s.Get(restaurantID, id)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureStatus(cc, models.CashCloseClosed); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	cc.Status = models.CashCloseVerified
	cc.VerifiedByUserID = &userID
	cc.VerifiedAt = &now
	cc.RecalcTotals()

	if err := s.db.Save(cc).Error; err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventCashCloseVerified, cc)}
	return cc, events, nil
}

// AddExpense appends an expense while the record is still open.
func (s *CashCloseService) AddExpense(restaurantID, id uuid.UUID, input ExpenseInput) (*models.CashClose, []realtime.Event, error) {
	cc, err := s.Get(restaurantID, id)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureStatus(cc, models.CashCloseOpen); err != nil {
		return nil, nil, err
	}

	cc.Expenses = append(cc.Expenses, models.CashExpense{
		ID:          uuid.New(),
		CashCloseID: cc.ID,
		Description: input.Description,
		Amount:      input.Amount,
		Category:    expenseCategory(input.Category),
		ReceiptRef:  input.ReceiptRef,
	})
	cc.RecalcTotals()

	if err := s.db.Save(cc).Error; err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventCashCloseExpenseAdded, cc)}
	return cc, events, nil
}

// Restore reopens a closed or verified record, clearing every closing and
// verification field and resetting expectedCash to the opening amount.
func (s *CashCloseService) Restore(restaurantID, id uuid.UUID) (*models.CashClose, []realtime.Event, error) {
	cc, err := s.Get(restaurantID, id)
	if err != nil {
		return nil, nil, err
	}
	if cc.Status == models.CashCloseOpen {
		return nil, nil, ErrInvalidState
	}

	applyRestore(cc)

	if err := s.db.Save(cc).Error; err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventCashCloseRestored, cc)}
	return cc, events, nil
}

// applyRestore resets a cash close back to its just-opened shape. Expenses
// are kept; everything derived from closing is cleared.
func applyRestore(cc *models.CashClose) {
	cc.ClosingCash = 0
	cc.ClosedByUserID = nil
	cc.ClosedAt = nil
	cc.VerifiedByUserID = nil
	cc.VerifiedAt = nil
	cc.SalesCash = 0
	cc.SalesCard = 0
	cc.SalesTotal = 0
	cc.ExpectedCash = cc.OpeningCash
	cc.Difference = 0
	cc.Status = models.CashCloseOpen
	cc.RecalcTotals()
}

// Get returns one cash close scoped to the restaurant, expenses included.
func (s *CashCloseService) Get(restaurantID, id uuid.UUID) (*models.CashClose, error) {
	var cc models.CashClose
	if err := s.db.Preload("Expenses").
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&cc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cc, nil
}

// List returns cash closes for the restaurant, newest first, optionally
// filtered by status and date range.
func (s *CashCloseService) List(restaurantID uuid.UUID, status string, from, to *time.Time) ([]models.CashClose, error) {
	query := s.db.Preload("Expenses").
		Where("restaurant_id = ?", restaurantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if from != nil {
		query = query.Where("date >= ?", utils.BeginningOfDay(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", utils.EndOfDay(*to))
	}

	var closes []models.CashClose
	err := query.Order("date DESC, created_at DESC").Find(&closes).Error
	return closes, err
}

// deliveredSalesForDay sums total over the restaurant's delivered orders
// created on the given calendar day.
func (s *CashCloseService) deliveredSalesForDay(restaurantID uuid.UUID, day time.Time) (float64, error) {
	var total float64
	err := s.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			restaurantID, models.OrderStatusDelivered,
			utils.BeginningOfDay(day), utils.EndOfDay(day)).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func expenseCategory(category string) string {
	if category == "" {
		return "general"
	}
	return category
}
