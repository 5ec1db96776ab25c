package controllers

import (
	"errors"
	"net/http"
	"restropos-backend/config"
	"restropos-backend/models"
	"restropos-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email             string       `json:"email" binding:"required,email"`
	Password          string       `json:"password" binding:"required,min=8"`
	Name              string       `json:"name" binding:"required"`
	Phone             string       `json:"phone"`
	RestaurantName    string       `json:"restaurantName" binding:"required"`
	RestaurantAddress string       `json:"restaurantAddress"`
	Settings          models.JSONB `json:"settings"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates the restaurant and its admin user in one transaction.
func Register(c *gin.Context) {
	var input RegisterInput

	if !bindJSON(c, &input) {
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Stored lowercase so the login lookup always matches.
	email := utils.NormalizeEmail(input.Email)
	if err := ensureEmailUnused(email); err != nil {
		handleServiceError(c, err)
		return
	}

	restaurant := models.Restaurant{
		ID:       uuid.New(),
		Name:     input.RestaurantName,
		Address:  input.RestaurantAddress,
		Settings: input.Settings,
		IsActive: true,
	}
	if restaurant.Settings == nil {
		restaurant.Settings = models.DefaultRestaurantSettings()
	}

	newUser := models.User{
		Email:        email,
		Password:     input.Password, // hashed in BeforeCreate hook
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         models.RoleAdmin,
		RestaurantID: restaurant.ID,
		IsActive:     true,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		return tx.Create(&newUser).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), restaurant.ID.String(), newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
			"name":  newUser.Name,
			"role":  newUser.Role,
		},
		"restaurant": gin.H{
			"id":   restaurant.ID,
			"name": restaurant.Name,
		},
	})
}

// Login authenticates by email and issues a token.
func Login(c *gin.Context) {
	var input LoginInput

	if !bindJSON(c, &input) {
		return
	}

	email := utils.NormalizeEmail(input.Email)

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is inactive")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.RestaurantID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"name":         user.Name,
			"role":         user.Role,
			"restaurantId": user.RestaurantID,
		},
	})
}

// Me returns the authenticated user.
func Me(c *gin.Context) {
	userID, ok := userFromContext(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"role":         user.Role,
		"restaurantId": user.RestaurantID,
		"preferences":  user.Preferences,
	})
}
