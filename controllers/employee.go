package controllers

import (
	"errors"
	"net/http"
	"restropos-backend/config"
	"restropos-backend/models"
	"restropos-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddEmployeeInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=manager employee"`
}

type UpdateEmployeeInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" binding:"omitempty,oneof=manager employee"`
	IsActive *bool   `json:"isActive"`
}

// GetEmployees lists the restaurant's users
func GetEmployees(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	var employees []models.User
	if err := config.DB.Where("restaurant_id = ?", restaurantID).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	utils.RespondWithData(c, http.StatusOK, employees)
}

// AddEmployee creates a user inside the caller's restaurant
func AddEmployee(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	var input AddEmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	email := utils.NormalizeEmail(input.Email)
	if err := ensureEmailUnused(email); err != nil {
		handleServiceError(c, err)
		return
	}

	employee := models.User{
		Email:        email,
		Password:     input.Password, // hashed in BeforeCreate hook
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         input.Role,
		RestaurantID: restaurantID,
		IsActive:     true,
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, employee)
}

// UpdateEmployee updates role, contact or active flag
func UpdateEmployee(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateEmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	var employee models.User
	if err := config.DB.Where("restaurant_id = ? AND id = ?", restaurantID, employeeID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	utils.RespondWithData(c, http.StatusOK, employee)
}

// DeleteEmployee deactivates a user
func DeleteEmployee(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Model(&models.User{}).
		Where("restaurant_id = ? AND id = ?", restaurantID, employeeID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Employee deleted successfully")
}
