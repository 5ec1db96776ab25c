package controllers

import (
	"errors"
	"net/http"
	"os"
	"restropos-backend/config"
	"restropos-backend/models"
	"restropos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type UpdateSettingsInput struct {
	Settings models.JSONB `json:"settings" binding:"required"`
}

// GetProfile returns the restaurant profile and settings
func GetProfile(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Restaurant not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, restaurant)
}

// UpdateProfile updates the restaurant contact details
func UpdateProfile(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if !bindJSON(c, &input) {
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Restaurant not found")
		return
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		restaurant.Phone = *input.Phone
	}
	if input.Email != nil {
		restaurant.Email = *input.Email
	}

	if err := config.DB.Save(&restaurant).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithData(c, http.StatusOK, restaurant)
}

// UpdateSettings replaces the settings document (currency, timezone, tax
// rate, business hours, alert flags)
func UpdateSettings(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	var input UpdateSettingsInput
	if !bindJSON(c, &input) {
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Restaurant not found")
		return
	}

	restaurant.Settings = input.Settings
	if err := config.DB.Save(&restaurant).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	utils.RespondWithData(c, http.StatusOK, restaurant)
}

// GetMenuQR returns a PNG QR code pointing at the restaurant's public menu
func GetMenuQR(c *gin.Context) {
	restaurantID, ok := restaurantFromContext(c)
	if !ok {
		return
	}

	baseURL := os.Getenv("PUBLIC_MENU_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	png, err := qrcode.Encode(baseURL+"/menu/"+restaurantID.String(), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
