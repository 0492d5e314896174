package utils

import (
	"log"
	"net/http"

	"catalog-admin-backend/internal/apperror"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// CreatedResponse sends a success response with status 201
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// ValidationErrorResponse sends field-keyed validation errors with status 400
func ValidationErrorResponse(c *gin.Context, errors map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"errors":  errors,
	})
}

// DomainErrorResponse maps a service error onto an HTTP response. Domain
// errors keep their message; anything else becomes a generic 500.
func DomainErrorResponse(c *gin.Context, err error) {
	if apperror.IsDomain(err) {
		ErrorResponse(c, apperror.Status(err), err.Error())
		return
	}
	log.Printf("Internal error: %v", err)
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
