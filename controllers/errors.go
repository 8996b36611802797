package controllers

import (
	"context"
	"errors"
	"net/http"

	"healthscan/services"
	"healthscan/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, utils.ErrInvalidMetrics),
		errors.Is(err, utils.ErrInvalidImage),
		errors.Is(err, services.ErrEmptyImage),
		errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrMissingUser),
		errors.Is(err, services.ErrInvalidBudget),
		errors.Is(err, services.ErrInvalidCalorieTarget):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
