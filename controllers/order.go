package controllers

import (
	"net/http"
	"restropos-backend/models"
	"restropos-backend/services"
	"restropos-backend/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed preparing ready delivered cancelled"`
}

// CreateOrder creates a new order with snapshot line items
func CreateOrder(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	userID, ok := userFromContext(c)
	if !ok {
		return
	}

	var input services.CreateOrderInput
	if !bindJSON(c, &input) {
		return
	}

	order, events, err := orderService.Create(restaurantID, userID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusCreated, order)
}

// GetOrders retrieves active orders with optional filters
func GetOrders(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	filters := services.OrderListFilters{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}
	if filters.Status != "" && !models.ValidOrderStatus(filters.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}
	if filters.Type != "" && !models.ValidOrderType(filters.Type) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid type filter")
		return
	}
	if from := c.Query("dateFrom"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateFrom")
			return
		}
		filters.DateFrom = &t
	}
	if to := c.Query("dateTo"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateTo")
			return
		}
		end := utils.EndOfDay(t)
		filters.DateTo = &end
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filters.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filters.Limit = limit
	}

	orders, total, err := orderService.List(restaurantID, filters)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
	})
}

// GetOrder retrieves a specific order by ID
func GetOrder(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := orderService.Get(restaurantID, orderID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, order)
}

// UpdateOrderStatus transitions the order, applying inventory side effects
func UpdateOrderStatus(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateOrderStatusInput
	if !bindJSON(c, &input) {
		return
	}

	order, events, err := orderService.UpdateStatus(restaurantID, orderID, input.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusOK, order)
}

// DeleteOrder soft deletes an order, restoring stock unless delivered
func DeleteOrder(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := orderService.Delete(restaurantID, orderID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithMessage(c, http.StatusOK, "Order deleted successfully")
}
