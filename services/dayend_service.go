package services

import (
	"context"
	"log"
	"restropos-backend/models"
	"restropos-backend/realtime"
	"restropos-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayEndService archives the day's active orders into a DaySummary row and
// deactivates them. It runs on demand via the API and nightly via cron.
type DayEndService struct {
	db *gorm.DB
}

func NewDayEndService(db *gorm.DB) *DayEndService {
	return &DayEndService{db: db}
}

// EndDay aggregates today's active orders, writes the summary and flips the
// orders inactive, all in one transaction.
func (s *DayEndService) EndDay(restaurantID uuid.UUID) (*models.DaySummary, []realtime.Event, error) {
	now := time.Now()
	start := utils.BeginningOfDay(now)
	end := utils.EndOfDay(now)

	var summary *models.DaySummary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Where("restaurant_id = ? AND is_active = true AND created_at BETWEEN ? AND ?",
			restaurantID, start, end).Find(&orders).Error; err != nil {
			return err
		}

		statusBreakdown := models.JSONB{}
		paymentBreakdown := models.JSONB{}
		var revenue float64
		for _, o := range orders {
			bumpCount(statusBreakdown, o.Status)
			bumpCount(paymentBreakdown, o.PaymentMethod)
			if o.Status == models.OrderStatusDelivered {
				revenue += o.Total
			}
		}

		summary = &models.DaySummary{
			ID:               uuid.New(),
			RestaurantID:     restaurantID,
			Date:             start,
			OrderCount:       len(orders),
			ArchivedOrders:   len(orders),
			TotalRevenue:     revenue,
			StatusBreakdown:  statusBreakdown,
			PaymentBreakdown: paymentBreakdown,
		}
		if err := tx.Create(summary).Error; err != nil {
			return err
		}

		if len(orders) > 0 {
			ids := make([]uuid.UUID, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID)
			}
			if err := tx.Model(&models.Order{}).
				Where("restaurant_id = ? AND id IN ?", restaurantID, ids).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventDayEnded, summary)}
	return summary, events, nil
}

// RunForAllRestaurants is the nightly cron entry point.
func (s *DayEndService) RunForAllRestaurants(publisher realtime.Publisher) {
	log.Println("Starting nightly day-end archival...")

	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch restaurants: %v", err)
		return
	}

	for _, r := range restaurants {
		summary, events, err := s.EndDay(r.ID)
		if err != nil {
			log.Printf("Restaurant %s: day-end failed: %v", r.ID, err)
			continue
		}
		log.Printf("Restaurant %s: archived %d orders", r.ID, summary.ArchivedOrders)
		publisher.Publish(context.Background(), r.ID, events...)
	}

	log.Println("Nightly day-end archival completed")
}

func bumpCount(m models.JSONB, key string) {
	if key == "" {
		return
	}
	if current, ok := m[key].(int); ok {
		m[key] = current + 1
		return
	}
	m[key] = 1
}
