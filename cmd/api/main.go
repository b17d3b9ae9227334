package main

import (
	"net/http"

	"storelocator-api/internal/config"
	"storelocator-api/internal/geocode"
	"storelocator-api/internal/handler"
	"storelocator-api/internal/repository"
	"storelocator-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Dataset is loaded once and read-only afterwards
	repo, err := repository.Load(config.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load dataset")
	}
	log.Info().Int("records", repo.Len()).Str("path", config.DatasetPath).Msg("dataset loaded")

	// An unset geocoder URL falls back to the offline gazetteer built
	// from the dataset's own city centroids
	var resolver geocode.Resolver
	if config.GeocoderBaseURL != "" {
		resolver = geocode.NewNominatimClient(config.GeocoderBaseURL, config.GeocoderUserAgent, config.GeocoderTimeout)
	} else {
		resolver = geocode.NewGazetteer(repo.AllRecords())
		log.Info().Msg("no geocoder configured, using offline gazetteer")
	}

	// Initialize layers
	nearestService := service.NewNearestService(resolver, repo, config.GeocoderTimeout)
	filterService := service.NewFilterService(repo)
	aggregateService := service.NewAggregateService(repo)

	nearestHandler := handler.NewNearestHandler(nearestService, config.DefaultNearestK)
	locationsHandler := handler.NewLocationsHandler(filterService)
	statsHandler := handler.NewStatsHandler(aggregateService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"records": repo.Len(),
		})
	})

	r.GET("/nearest", nearestHandler.Nearest)
	r.GET("/locations", locationsHandler.Locations)
	r.GET("/timezones", func(c *gin.Context) {
		c.JSON(http.StatusOK, repo.TimezoneIDs())
	})
	r.GET("/stats/countries", statsHandler.TopCountries)
	r.GET("/stats/ownership", statsHandler.Ownership)
	r.GET("/stats/monthly", statsHandler.MonthlyAdditions)

	r.Run(config.ServerAddress)
}
