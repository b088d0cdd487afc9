package controllers

import (
	"errors"
	"net/http"

	"medequip_server/internal/services"
	"medequip_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse is the success envelope returned by every endpoint
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   int         `json:"count,omitempty"`
}

// respondServiceError maps typed domain errors onto HTTP status codes.
// Unexpected errors are logged and degrade to a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Success: false,
			Error:   "Not Found",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{
			Success: false,
			Error:   "Conflict",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
	default:
		colors.PrintError("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Internal server error",
			Message: "Please try again later",
		})
	}
}
