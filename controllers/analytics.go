package controllers

import (
	"net/http"
	"restropos-backend/services"
	"restropos-backend/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the combined overview for the restaurant
func GetDashboard(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	dashboard, err := analyticsService.Dashboard(restaurantID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, dashboard)
}

// GetSalesAnalytics returns the daily sales summary for a given date
func GetSalesAnalytics(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	day := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date")
			return
		}
		day = parsed
	}

	summary, err := analyticsService.DailySales(restaurantID, day)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, summary)
}

// GetInventoryAnalytics returns the full-inventory aggregation
func GetInventoryAnalytics(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	summary, err := analyticsService.Inventory(restaurantID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, summary)
}

// GetOrdersAnalytics returns order histograms over a date range
func GetOrdersAnalytics(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	to := time.Now()
	from := utils.BeginningOfDay(to.AddDate(0, 0, -30))
	if v := c.Query("dateFrom"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateFrom")
			return
		}
		from = utils.BeginningOfDay(parsed)
	}
	if v := c.Query("dateTo"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateTo")
			return
		}
		to = utils.EndOfDay(parsed)
	}
	if to.Before(from) {
		utils.RespondWithError(c, http.StatusBadRequest, "dateTo before dateFrom")
		return
	}
	if utils.DaysBetween(from, to) > 366 {
		utils.RespondWithError(c, http.StatusBadRequest, "Date range too large")
		return
	}

	summary, err := analyticsService.Orders(restaurantID, from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, summary)
}

// GetProjections runs the revenue projection over a historical window
func GetProjections(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 365 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid days")
		return
	}

	series, err := analyticsService.RevenueSeries(restaurantID, days)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	revenues := make([]float64, len(series))
	for i, point := range series {
		revenues[i] = point.Revenue
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"series":     series,
		"projection": services.ProjectRevenue(revenues),
	})
}

// EndDay archives today's active orders into a summary record
func EndDay(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	summary, events, err := dayEndService.EndDay(restaurantID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to end day")
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusOK, summary)
}
