package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"storelocator-api/internal/geocode"
	"storelocator-api/internal/models"

	"github.com/gin-gonic/gin"
)

// NearestHandler handles nearest-locations requests
type NearestHandler struct {
	service  NearestService
	defaultK int
}

// Service interface for dependency injection
type NearestService interface {
	Nearest(ctx context.Context, place string, k int) (*models.NearestResult, error)
}

// NewNearestHandler creates a new nearest-locations handler
func NewNearestHandler(svc NearestService, defaultK int) *NearestHandler {
	return &NearestHandler{service: svc, defaultK: defaultK}
}

// Nearest handles GET /nearest requests
func (h *NearestHandler) Nearest(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'place'"})
		return
	}

	k := h.defaultK
	if kStr := c.Query("k"); kStr != "" {
		parsed, err := strconv.Atoi(kStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'k' must be a positive integer"})
			return
		}
		k = parsed
	}

	result, err := h.service.Nearest(c.Request.Context(), place, k)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
