package services

import (
	"restropos-backend/models"
	"restropos-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService is the read side: aggregations over orders, inventory and
// cash closes. Nothing here mutates state.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type DailySalesSummary struct {
	Date         string             `json:"date"`
	OrderCount   int64              `json:"orderCount"`
	Revenue      float64            `json:"revenue"`
	AverageOrder float64            `json:"averageOrder"`
	ByStatus     map[string]int64   `json:"byStatus"`
}

type InventorySummary struct {
	ItemCount     int64   `json:"itemCount"`
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int64   `json:"lowStockCount"`
	Categories    int64   `json:"categories"`
}

type OrdersSummary struct {
	ByType          map[string]int64 `json:"byType"`
	ByPaymentMethod map[string]int64 `json:"byPaymentMethod"`
	AvgPrepMinutes  float64          `json:"avgPrepMinutes"`
}

type DailyRevenuePoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// DailySales summarizes one calendar day of orders: count, revenue and
// average over delivered orders, plus a status histogram over everything
// created that day.
func (s *AnalyticsService) DailySales(restaurantID uuid.UUID, day time.Time) (*DailySalesSummary, error) {
	start := utils.BeginningOfDay(day)
	end := utils.EndOfDay(day)

	summary := DailySalesSummary{
		Date:     start.Format("2006-01-02"),
		ByStatus: make(map[string]int64),
	}

	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, start, end).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		summary.ByStatus[r.Status] = r.Count
	}

	type totals struct {
		Count   int64
		Revenue float64
	}
	var t totals
	if err := s.db.Model(&models.Order{}).
		Select("COUNT(*) as count, COALESCE(SUM(total), 0) as revenue").
		Where("restaurant_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			restaurantID, models.OrderStatusDelivered, start, end).
		Scan(&t).Error; err != nil {
		return nil, err
	}
	summary.OrderCount = t.Count
	summary.Revenue = t.Revenue
	if t.Count > 0 {
		summary.AverageOrder = t.Revenue / float64(t.Count)
	}

	return &summary, nil
}

// Inventory aggregates the full active inventory collection.
func (s *AnalyticsService) Inventory(restaurantID uuid.UUID) (*InventorySummary, error) {
	var summary InventorySummary

	base := s.db.Model(&models.InventoryItem{}).
		Where("restaurant_id = ? AND is_active = true", restaurantID).
		Session(&gorm.Session{})

	if err := base.Count(&summary.ItemCount).Error; err != nil {
		return nil, err
	}
	if err := base.Select("COALESCE(SUM(total_value), 0)").
		Scan(&summary.TotalValue).Error; err != nil {
		return nil, err
	}
	if err := base.Where("is_low_stock = true").
		Count(&summary.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := base.Distinct("category").
		Count(&summary.Categories).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

// Orders builds histograms by type and payment method over a date range,
// plus the average preparation time of delivered orders.
func (s *AnalyticsService) Orders(restaurantID uuid.UUID, from, to time.Time) (*OrdersSummary, error) {
	summary := OrdersSummary{
		ByType:          make(map[string]int64),
		ByPaymentMethod: make(map[string]int64),
	}

	type row struct {
		Key   string
		Count int64
	}

	var typeRows []row
	if err := s.db.Model(&models.Order{}).
		Select("type as key, COUNT(*) as count").
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, from, to).
		Group("type").
		Scan(&typeRows).Error; err != nil {
		return nil, err
	}
	for _, r := range typeRows {
		summary.ByType[r.Key] = r.Count
	}

	var payRows []row
	if err := s.db.Model(&models.Order{}).
		Select("payment_method as key, COUNT(*) as count").
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, from, to).
		Group("payment_method").
		Scan(&payRows).Error; err != nil {
		return nil, err
	}
	for _, r := range payRows {
		summary.ByPaymentMethod[r.Key] = r.Count
	}

	if err := s.db.Model(&models.Order{}).
		Select("COALESCE(AVG(preparation_minutes), 0)").
		Where("restaurant_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			restaurantID, models.OrderStatusDelivered, from, to).
		Scan(&summary.AvgPrepMinutes).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

// RevenueSeries returns one revenue point per calendar day over the last
// `days` days, delivered orders only. Days without sales appear as zero so
// the projection input is evenly spaced.
func (s *AnalyticsService) RevenueSeries(restaurantID uuid.UUID, days int) ([]DailyRevenuePoint, error) {
	since := utils.BeginningOfDay(time.Now().AddDate(0, 0, -(days - 1)))

	type row struct {
		Day     time.Time
		Revenue float64
	}
	var rows []row
	if err := s.db.Model(&models.Order{}).
		Select("DATE_TRUNC('day', created_at) as day, COALESCE(SUM(total), 0) as revenue").
		Where("restaurant_id = ? AND status = ? AND created_at >= ?",
			restaurantID, models.OrderStatusDelivered, since).
		Group("DATE_TRUNC('day', created_at)").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDay[r.Day.Format("2006-01-02")] = r.Revenue
	}

	series := make([]DailyRevenuePoint, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i)
		series = append(series, DailyRevenuePoint{
			Date:    day,
			Revenue: byDay[day.Format("2006-01-02")],
		})
	}
	return series, nil
}

// Dashboard bundles today's sales, open cash closes, low-stock items and the
// latest orders into one response.
func (s *AnalyticsService) Dashboard(restaurantID uuid.UUID) (map[string]interface{}, error) {
	today, err := s.DailySales(restaurantID, time.Now())
	if err != nil {
		return nil, err
	}

	var openCloses []models.CashClose
	if err := s.db.Where("restaurant_id = ? AND status = ?", restaurantID, models.CashCloseOpen).
		Find(&openCloses).Error; err != nil {
		return nil, err
	}

	var lowStock []models.InventoryItem
	if err := s.db.Where("restaurant_id = ? AND is_active = true AND is_low_stock = true", restaurantID).
		Order("quantity ASC").
		Limit(10).
		Find(&lowStock).Error; err != nil {
		return nil, err
	}

	var recentOrders []models.Order
	if err := s.db.Preload("Items").
		Where("restaurant_id = ? AND is_active = true", restaurantID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"todaySales":     today,
		"openCashCloses": openCloses,
		"lowStockItems":  lowStock,
		"recentOrders":   recentOrders,
	}, nil
}
