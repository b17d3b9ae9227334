package handler

import (
	"net/http"
	"strconv"

	"storelocator-api/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles aggregate statistics requests
type StatsHandler struct {
	service AggregateService
}

// Service interface for dependency injection
type AggregateService interface {
	TopCountries(n int) []service.CategoryCount
	OwnershipDistribution() []service.CategoryCount
	MonthlyAdditions(city string) []service.MonthCount
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(svc AggregateService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// TopCountries handles GET /stats/countries requests
func (h *StatsHandler) TopCountries(c *gin.Context) {
	n := 5
	if nStr := c.Query("n"); nStr != "" {
		parsed, err := strconv.Atoi(nStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'n' must be a positive integer"})
			return
		}
		n = parsed
	}

	c.JSON(http.StatusOK, h.service.TopCountries(n))
}

// Ownership handles GET /stats/ownership requests
func (h *StatsHandler) Ownership(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.OwnershipDistribution())
}

// MonthlyAdditions handles GET /stats/monthly requests
func (h *StatsHandler) MonthlyAdditions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.MonthlyAdditions(c.Query("city")))
}
