package services

import (
	"errors"
	"fmt"
	"restropos-backend/models"
	"restropos-backend/realtime"
	"restropos-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService owns the order state machine and its inventory side effects.
// Every method takes the restaurant ID as its first parameter; there is no
// way to reach an order without naming the tenant.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderLineInput struct {
	InventoryItemID uuid.UUID `json:"inventoryItemId" binding:"required"`
	Quantity        int       `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	Customer      models.OrderCustomer `json:"customer"`
	Type          string               `json:"type" binding:"required,oneof=dine_in takeout delivery"`
	Items         []OrderLineInput     `json:"items" binding:"required,min=1,dive"`
	Tax           float64              `json:"tax" binding:"min=0"`
	Discount      float64              `json:"discount" binding:"min=0"`
	PaymentMethod string               `json:"paymentMethod" binding:"omitempty,oneof=cash card transfer"`
	Notes         string               `json:"notes"`
	AssignedTo    *uuid.UUID           `json:"assignedTo"`
}

type OrderListFilters struct {
	Status   string
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

// Create validates every line against current inventory, captures a
// price/cost snapshot per line and persists the order. No stock is
// decremented here; that happens on the first transition into preparing or
// delivered.
func (s *OrderService) Create(restaurantID, userID uuid.UUID, input CreateOrderInput) (*models.Order, []realtime.Event, error) {
	order := models.Order{
		ID:               uuid.New(),
		RestaurantID:     restaurantID,
		OrderNumber:      "ORD-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
		Customer:         input.Customer,
		Type:             input.Type,
		Tax:              input.Tax,
		Discount:         input.Discount,
		Status:           models.OrderStatusPending,
		PaymentStatus:    models.PaymentPending,
		PaymentMethod:    input.PaymentMethod,
		Notes:            input.Notes,
		CreatedByUserID:  userID,
		AssignedToUserID: input.AssignedTo,
		IsActive:         true,
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PayMethodCash
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range input.Items {
			var item models.InventoryItem
			if err := tx.Where("restaurant_id = ? AND id = ? AND is_active = true",
				restaurantID, line.InventoryItemID).First(&item).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrItemNotFound, line.InventoryItemID)
				}
				return err
			}

			snapshot, err := makeOrderLine(&item, line.Quantity)
			if err != nil {
				return err
			}
			snapshot.OrderID = order.ID
			order.Items = append(order.Items, snapshot)
		}

		order.RecalcTotals()

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventOrderCreated, order)}
	return &order, events, nil
}

// makeOrderLine snapshots an inventory item into an order line, rejecting
// quantities that exceed current stock.
func makeOrderLine(item *models.InventoryItem, quantity int) (models.OrderItem, error) {
	if quantity > item.Quantity {
		return models.OrderItem{}, fmt.Errorf("%w: %s (requested %d, available %d)",
			ErrInsufficientStock, item.Name, quantity, item.Quantity)
	}
	return models.OrderItem{
		ID:              uuid.New(),
		InventoryItemID: item.ID,
		Name:            item.Name,
		Quantity:        quantity,
		UnitPrice:       item.SellingPrice,
		UnitCost:        item.CostPrice,
		Total:           float64(quantity) * item.SellingPrice,
	}, nil
}

// UpdateStatus moves the order to newStatus. Any valid status value is
// accepted regardless of the current one. The first transition into
// preparing or delivered decrements inventory once, gated by the decrement
// marker; cancelling restores it and deactivates the order.
func (s *OrderService) UpdateStatus(restaurantID, orderID uuid.UUID, newStatus string) (*models.Order, []realtime.Event, error) {
	var order models.Order
	if err := s.db.Preload("Items").
		Where("restaurant_id = ? AND id = ? AND is_active = true", restaurantID, orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		switch stockEffect(&order, newStatus) {
		case -1:
			if err := s.adjustInventory(tx, restaurantID, order.Items, -1); err != nil {
				return err
			}
			order.InventoryDecrementedAt = &now
		case 1:
			if err := s.adjustInventory(tx, restaurantID, order.Items, 1); err != nil {
				return err
			}
			order.InventoryDecrementedAt = nil
		}

		if newStatus == models.OrderStatusDelivered && order.CompletedAt == nil {
			order.CompletedAt = &now
			order.PreparationMinutes = int(now.Sub(order.CreatedAt).Minutes())
		}

		if newStatus == models.OrderStatusCancelled {
			// Cancelled orders drop out of all active-order queries.
			order.IsActive = false
		}

		order.Status = newStatus
		order.RecalcTotals()

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventOrderStatusUpdated, order)}
	return &order, events, nil
}

// stockEffect decides the inventory movement a transition into newStatus
// requires: -1 decrements, +1 restores, 0 leaves stock alone. Stock goes out
// at most once, on the first entry into preparing or delivered, and comes
// back only when that decrement is on record.
func stockEffect(order *models.Order, newStatus string) int {
	switch {
	case order.InventoryDecrementedAt == nil &&
		(newStatus == models.OrderStatusPreparing || newStatus == models.OrderStatusDelivered):
		return -1
	case order.InventoryDecrementedAt != nil && newStatus == models.OrderStatusCancelled:
		return 1
	}
	return 0
}

// adjustInventory applies direction*quantity for every line and recomputes
// the item's derived fields. Runs inside the caller's transaction.
func (s *OrderService) adjustInventory(tx *gorm.DB, restaurantID uuid.UUID, items []models.OrderItem, direction int) error {
	for _, line := range items {
		var item models.InventoryItem
		if err := tx.Where("restaurant_id = ? AND id = ?", restaurantID, line.InventoryItemID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Item was removed after the order was taken; skip it.
				continue
			}
			return err
		}
		item.Quantity += direction * line.Quantity
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		item.RecalcDerived()
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete soft-deletes an order. Unless it was delivered, every line quantity
// goes back to inventory unconditionally, even if it was never decremented.
func (s *OrderService) Delete(restaurantID, orderID uuid.UUID) ([]realtime.Event, error) {
	var order models.Order
	if err := s.db.Preload("Items").
		Where("restaurant_id = ? AND id = ? AND is_active = true", restaurantID, orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if order.Status != models.OrderStatusDelivered {
			if err := s.adjustInventory(tx, restaurantID, order.Items, 1); err != nil {
				return err
			}
		}
		order.IsActive = false
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	events := []realtime.Event{realtime.NewEvent(realtime.EventOrderDeleted,
		map[string]interface{}{"id": order.ID, "orderNumber": order.OrderNumber})}
	return events, nil
}

// List returns active orders for the restaurant, newest first.
func (s *OrderService) List(restaurantID uuid.UUID, filters OrderListFilters) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND is_active = true", restaurantID)

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var orders []models.Order
	err := query.Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

// Get returns one order scoped to the restaurant.
func (s *OrderService) Get(restaurantID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").
		Where("restaurant_id = ? AND id = ?", restaurantID, orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}
