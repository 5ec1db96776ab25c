package controllers

import (
	"net/http"
	"restropos-backend/services"
	"restropos-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// OpenCashClose opens a cash close for a shift
func OpenCashClose(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	userID, ok := userFromContext(c)
	if !ok {
		return
	}

	var input services.OpenCashCloseInput
	if !bindJSON(c, &input) {
		return
	}

	cc, events, err := cashCloseService.Open(restaurantID, userID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusCreated, cc)
}

// GetCashCloses lists cash closes with optional status and date filters
func GetCashCloses(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if v := c.Query("dateFrom"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateFrom")
			return
		}
		from = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateTo")
			return
		}
		to = &t
	}

	closes, err := cashCloseService.List(restaurantID, c.Query("status"), from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, closes)
}

// GetCashClose retrieves a specific cash close by ID
func GetCashClose(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cc, err := cashCloseService.Get(restaurantID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, cc)
}

// CloseCashClose reconciles and closes an open shift
func CloseCashClose(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	userID, ok := userFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.CloseCashCloseInput
	if !bindJSON(c, &input) {
		return
	}

	cc, events, err := cashCloseService.Close(restaurantID, id, userID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusOK, cc)
}

// VerifyCashClose marks a closed shift as verified
func VerifyCashClose(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	userID, ok := userFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cc, events, err := cashCloseService.Verify(restaurantID, id, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusOK, cc)
}

// AddCashCloseExpense appends an expense to an open shift
func AddCashCloseExpense(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.ExpenseInput
	if !bindJSON(c, &input) {
		return
	}

	cc, events, err := cashCloseService.AddExpense(restaurantID, id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusOK, cc)
}

// RestoreCashClose reopens a closed or verified shift
func RestoreCashClose(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cc, events, err := cashCloseService.Restore(restaurantID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	publish(c, restaurantID, events)
	utils.RespondWithData(c, http.StatusOK, cc)
}
