package handlers

import (
	"errors"
	"net/http"

	"medicore/models"
	"medicore/services/scheduling"
	"medicore/services/user"

	"github.com/gin-gonic/gin"
)

// respondError translates service errors into HTTP responses so every
// handler reports the same status for the same failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrValidation),
		errors.Is(err, scheduling.ErrOutsideWorkingHours):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrSlotConflict),
		errors.Is(err, scheduling.ErrCapacityExceeded),
		errors.Is(err, scheduling.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrDoctorBusy):
		// Another booking holds the doctor's lock; the client should retry.
		c.Header("Retry-After", "1")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requesterID returns the authenticated user's ID from the context.
func requesterID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// requesterRole returns the authenticated user's role from the context.
func requesterRole(c *gin.Context) models.Role {
	val, exists := c.Get("userRole")
	if !exists {
		return ""
	}
	role, _ := val.(models.Role)
	return role
}
