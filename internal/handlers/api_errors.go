package handlers

import (
	"errors"
	"log"
	"net/http"

	"card-shuffler-go/internal/models"

	"github.com/gin-gonic/gin"
)

func writeAPIError(c *gin.Context, err error) {
	if err == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if errors.Is(err, models.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	// Safe typed validation errors (do NOT echo raw errors).
	switch {
	case errors.Is(err, models.ErrInvalidSeed):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid seed"})
		return
	case errors.Is(err, models.ErrInvalidFormat):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid format"})
		return
	case errors.Is(err, models.ErrInvalidOrder):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid order"})
		return
	case errors.Is(err, models.ErrInvalidCard):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid card"})
		return
	case errors.Is(err, models.ErrMissingCard):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing card"})
		return
	}

	// Unknown/internal errors: log details, return generic message.
	log.Printf("internal error: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
