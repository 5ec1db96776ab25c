package controllers

import (
	"errors"
	"net/http"
	"restropos-backend/config"
	"restropos-backend/models"
	"restropos-backend/realtime"
	"restropos-backend/services"
	"restropos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shared service instances, wired once from main after the DB connects.
var (
	publisher        realtime.Publisher = realtime.NoopPublisher{}
	orderService     *services.OrderService
	cashCloseService *services.CashCloseService
	analyticsService *services.AnalyticsService
	dayEndService    *services.DayEndService
)

func Setup(db *gorm.DB, pub realtime.Publisher) {
	if pub != nil {
		publisher = pub
	}
	orderService = services.NewOrderService(db)
	cashCloseService = services.NewCashCloseService(db)
	analyticsService = services.NewAnalyticsService(db)
	dayEndService = services.NewDayEndService(db)
}

// restaurantFromContext resolves the tenant from the JWT claims. Every
// authorized route goes through this.
func restaurantFromContext(c *gin.Context) (uuid.UUID, bool) {
	restaurantID, exists := c.Get("restaurantId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Restaurant ID not found in context")
		return uuid.Nil, false
	}
	restaurantUUID, err := uuid.Parse(restaurantID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid restaurant ID format")
		return uuid.Nil, false
	}
	return restaurantUUID, true
}

func userFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// bindJSON binds the request body into input. Validation failures go out as
// the structured field-error envelope; malformed JSON as a plain message.
func bindJSON(c *gin.Context, input interface{}) bool {
	err := c.ShouldBindJSON(input)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrors := make([]gin.H, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrors = append(fieldErrors, gin.H{
				"field": fieldErr.Field(),
				"rule":  fieldErr.Tag(),
			})
		}
		utils.RespondWithValidationErrors(c, http.StatusBadRequest, fieldErrors)
	} else {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
	}
	return false
}

// ensureEmailUnused reports ErrDuplicateEmail when any user already holds the
// (normalized) email.
func ensureEmailUnused(email string) error {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return services.ErrDuplicateEmail
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError maps the domain error taxonomy onto HTTP codes.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrShiftAlreadyOpen),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrDuplicateEmail):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// publish fans out domain events after the write committed. Fire-and-forget.
func publish(c *gin.Context, restaurantID uuid.UUID, events []realtime.Event) {
	publisher.Publish(c.Request.Context(), restaurantID, events...)
}
