package handlers

import (
	"errors"
	"log"
	"net/http"

	"flagit/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are logged and reduced to a generic 500 so store internals never
// reach clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict, please retry"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
