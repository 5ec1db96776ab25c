// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the error envelope {status, message, errors?}
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}

// RespondWithValidationErrors reports a structured field error list
func RespondWithValidationErrors(c *gin.Context, code int, errors []gin.H) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": "Validation failed",
		"errors":  errors,
	})
}

// RespondWithData writes the success envelope {status, data}
func RespondWithData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{
		"status": "success",
		"data":   data,
	})
}

// RespondWithMessage writes {status, message}
func RespondWithMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
	})
}
