package handler

import (
	"errors"
	"net/http"
	"time"

	"storelocator-api/internal/models"
	"storelocator-api/internal/service"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// LocationsHandler handles filtered location listing requests
type LocationsHandler struct {
	service FilterService
}

// Service interface for dependency injection
type FilterService interface {
	Filter(criteria models.FilterCriteria) ([]models.LocationRecord, error)
}

// NewLocationsHandler creates a new locations handler
func NewLocationsHandler(svc FilterService) *LocationsHandler {
	return &LocationsHandler{service: svc}
}

// locationSummary is the column subset exposed for filtered listings
type locationSummary struct {
	ID          int    `json:"id"`
	StoreID     string `json:"store_id"`
	Name        string `json:"name"`
	FirstSeen   string `json:"first_seen"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
	TimezoneID  string `json:"timezone_id"`
}

// Locations handles GET /locations requests
func (h *LocationsHandler) Locations(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'start' and 'end'"})
		return
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date format, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date format, expected YYYY-MM-DD"})
		return
	}

	criteria := models.FilterCriteria{
		TimezoneID:  c.Query("timezone"),
		City:        c.Query("city"),
		CountryCode: c.Query("country"),
		StartDate:   start,
		EndDate:     end,
	}

	records, err := h.service.Filter(criteria)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start date must not be after end date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if c.Query("sort") == "store_id" {
		records = service.SortByStoreID(records)
	}

	summaries := make([]locationSummary, 0, len(records))
	for _, record := range records {
		summary := locationSummary{
			ID:          record.ID,
			StoreID:     record.StoreID,
			Name:        record.Name,
			City:        record.City,
			CountryCode: record.CountryCode,
			TimezoneID:  record.TimezoneID,
		}
		if record.FirstSeen != nil {
			summary.FirstSeen = record.FirstSeen.Format(dateLayout)
		}
		summaries = append(summaries, summary)
	}

	c.JSON(http.StatusOK, summaries)
}
