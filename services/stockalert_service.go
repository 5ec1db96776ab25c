package services

import (
	"fmt"
	"log"
	"os"
	"restropos-backend/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// StockAlertService sends a daily low-stock digest over SMS to restaurants
// that opted in through their settings.
type StockAlertService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewStockAlertService(db *gorm.DB) *StockAlertService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &StockAlertService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *StockAlertService) SendDailyAlerts() {
	log.Println("Starting daily low-stock alert processing...")

	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch restaurants: %v", err)
		return
	}

	for _, restaurant := range restaurants {
		s.ProcessRestaurantAlerts(restaurant)
	}

	log.Println("Daily low-stock alert processing completed")
}

func (s *StockAlertService) ProcessRestaurantAlerts(restaurant models.Restaurant) {
	enabled, _ := restaurant.Settings["lowStockAlerts"].(bool)
	phone, _ := restaurant.Settings["alertPhone"].(string)
	if !enabled || phone == "" {
		return
	}

	var items []models.InventoryItem
	if err := s.db.Where("restaurant_id = ? AND is_active = true AND is_low_stock = true", restaurant.ID).
		Order("quantity ASC").
		Find(&items).Error; err != nil {
		log.Printf("Restaurant %s: failed to fetch low-stock items: %v", restaurant.ID, err)
		return
	}
	if len(items) == 0 {
		return
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %d %s (min %d)", item.Name, item.Quantity, item.Unit, item.MinQuantity))
	}
	message := fmt.Sprintf("%s - low stock today:\n%s", restaurant.Name, strings.Join(lines, "\n"))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	status := "sent"
	errorMsg := ""
	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Restaurant %s: failed to send low-stock alert: %v", restaurant.ID, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Restaurant %s: low-stock alert sent, SID: %s", restaurant.ID, *resp.Sid)
	}

	s.logAlerts(restaurant.ID, items, status, errorMsg)
}

func (s *StockAlertService) logAlerts(restaurantID uuid.UUID, items []models.InventoryItem, status, errorMsg string) {
	for _, item := range items {
		alertLog := models.StockAlertLog{
			RestaurantID:    restaurantID,
			InventoryItemID: item.ID,
			ItemName:        item.Name,
			Quantity:        item.Quantity,
			Channel:         "sms",
			Status:          status,
			ErrorMsg:        errorMsg,
			SentAt:          time.Now(),
		}
		if err := s.db.Create(&alertLog).Error; err != nil {
			log.Printf("Failed to log stock alert for item %s: %v", item.ID, err)
		}
	}
}
