package main

import (
	"flag"
	"fmt"
	"os"

	"storelocator-api/internal/repository"
	"storelocator-api/internal/service"
)

func main() {
	file := flag.String("file", "", "Path to the dataset CSV file")
	top := flag.Int("top", 5, "Number of countries to list")
	city := flag.String("city", "", "Restrict the monthly additions report to one city")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	repo, err := repository.Load(*file)
	if err != nil {
		fmt.Printf("Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	records := repo.AllRecords()
	withCoords := 0
	for _, record := range records {
		if record.HasValidCoordinates() {
			withCoords++
		}
	}

	fmt.Printf("Loaded %d records (%d with valid coordinates, %d timezones)\n",
		repo.Len(), withCoords, len(repo.TimezoneIDs()))

	aggregates := service.NewAggregateService(repo)

	fmt.Printf("\nTop %d countries by location count:\n", *top)
	for _, count := range aggregates.TopCountries(*top) {
		fmt.Printf("  %-4s %d\n", count.Category, count.Count)
	}

	fmt.Println("\nOwnership distribution:")
	for _, count := range aggregates.OwnershipDistribution() {
		fmt.Printf("  %-15s %d\n", count.Category, count.Count)
	}

	fmt.Println("\nAdditions per month:")
	for _, month := range aggregates.MonthlyAdditions(*city) {
		fmt.Printf("  %s  %d\n", month.Month.Format("2006-01"), month.Count)
	}
}
