package controllers

import (
	"errors"
	"net/http"
	"restropos-backend/config"
	"restropos-backend/models"
	"restropos-backend/realtime"
	"restropos-backend/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateInventoryInput defines the expected JSON structure for creating an item
type CreateInventoryInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"omitempty,oneof=food beverage supplies other"`
	Quantity     int     `json:"quantity" binding:"min=0"`
	MinQuantity  int     `json:"minQuantity" binding:"min=0"`
	MaxQuantity  int     `json:"maxQuantity" binding:"min=0"`
	Unit         string  `json:"unit" binding:"omitempty,oneof=unit kg g l ml pack"`
	CostPrice    float64 `json:"costPrice" binding:"min=0"`
	SellingPrice float64 `json:"sellingPrice" binding:"min=0"`
}

// UpdateInventoryInput defines the expected JSON structure for updating an item
type UpdateInventoryInput struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category" binding:"omitempty,oneof=food beverage supplies other"`
	MinQuantity  *int     `json:"minQuantity" binding:"omitempty,min=0"`
	MaxQuantity  *int     `json:"maxQuantity" binding:"omitempty,min=0"`
	Unit         *string  `json:"unit" binding:"omitempty,oneof=unit kg g l ml pack"`
	CostPrice    *float64 `json:"costPrice" binding:"omitempty,min=0"`
	SellingPrice *float64 `json:"sellingPrice" binding:"omitempty,min=0"`
}

// UpdateQuantityInput adjusts stock with an explicit operation
type UpdateQuantityInput struct {
	Operation string `json:"operation" binding:"required,oneof=set add subtract"`
	Quantity  int    `json:"quantity" binding:"min=0"`
}

// CreateInventoryItem creates a new inventory item for the restaurant
func CreateInventoryItem(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	var input CreateInventoryInput
	if !bindJSON(c, &input) {
		return
	}

	item := models.InventoryItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         input.Name,
		Category:     input.Category,
		Quantity:     input.Quantity,
		MinQuantity:  input.MinQuantity,
		MaxQuantity:  input.MaxQuantity,
		Unit:         input.Unit,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		IsActive:     true,
	}
	if item.Category == "" {
		item.Category = models.CategoryOther
	}
	if item.Unit == "" {
		item.Unit = models.UnitPiece
	}
	item.RecalcDerived()

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}

	publish(c, restaurantID, []realtime.Event{realtime.NewEvent(realtime.EventInventoryCreated, item)})
	utils.RespondWithData(c, http.StatusCreated, item)
}

// GetInventoryItems retrieves a paginated, filterable list of active items
func GetInventoryItems(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Model(&models.InventoryItem{}).
		Where("restaurant_id = ? AND is_active = true", restaurantID)

	if category := c.Query("category"); category != "" {
		if !models.ValidInventoryCategory(category) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
			return
		}
		query = query.Where("category = ?", category)
	}
	if c.Query("lowStock") == "true" {
		query = query.Where("is_low_stock = true")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	var items []models.InventoryItem
	if err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetInventoryItem retrieves a specific item by ID
func GetInventoryItem(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("restaurant_id = ? AND id = ? AND is_active = true", restaurantID, itemID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, item)
}

// UpdateInventoryItem updates an existing item and recomputes derived fields
func UpdateInventoryItem(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateInventoryInput
	if !bindJSON(c, &input) {
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("restaurant_id = ? AND id = ? AND is_active = true", restaurantID, itemID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.MinQuantity != nil {
		item.MinQuantity = *input.MinQuantity
	}
	if input.MaxQuantity != nil {
		item.MaxQuantity = *input.MaxQuantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.CostPrice != nil {
		item.CostPrice = *input.CostPrice
	}
	if input.SellingPrice != nil {
		item.SellingPrice = *input.SellingPrice
	}
	item.RecalcDerived()

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}

	publish(c, restaurantID, []realtime.Event{realtime.NewEvent(realtime.EventInventoryUpdated, item)})
	utils.RespondWithData(c, http.StatusOK, item)
}

// UpdateInventoryQuantity adjusts stock with set/add/subtract semantics
func UpdateInventoryQuantity(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateQuantityInput
	if !bindJSON(c, &input) {
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("restaurant_id = ? AND id = ? AND is_active = true", restaurantID, itemID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	switch input.Operation {
	case "set":
		item.Quantity = input.Quantity
	case "add":
		item.Quantity += input.Quantity
	case "subtract":
		if input.Quantity > item.Quantity {
			utils.RespondWithError(c, http.StatusBadRequest, "Cannot subtract below zero")
			return
		}
		item.Quantity -= input.Quantity
	}
	item.RecalcDerived()

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update quantity")
		return
	}

	publish(c, restaurantID, []realtime.Event{realtime.NewEvent(realtime.EventInventoryUpdated, item)})
	utils.RespondWithData(c, http.StatusOK, item)
}

// DeleteInventoryItem soft deletes an item (flag flip, never removed)
func DeleteInventoryItem(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Model(&models.InventoryItem{}).
		Where("restaurant_id = ? AND id = ? AND is_active = true", restaurantID, itemID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		return
	}

	publish(c, restaurantID, []realtime.Event{realtime.NewEvent(realtime.EventInventoryDeleted,
		gin.H{"id": itemID})})
	utils.RespondWithMessage(c, http.StatusOK, "Inventory item deleted successfully")
}
