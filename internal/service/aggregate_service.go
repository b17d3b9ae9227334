package service

import (
	"sort"
	"time"

	"storelocator-api/internal/models"
)

// CategoryCount is one entry of a grouped count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthCount is the number of records first seen within one calendar month.
type MonthCount struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}

// AggregateService contains the summary statistics computed over the
// dataset: grouped counts, top-N rankings and monthly time buckets.
type AggregateService struct {
	source LocationSource
}

// NewAggregateService creates a new aggregation service.
func NewAggregateService(source LocationSource) *AggregateService {
	return &AggregateService{source: source}
}

// TopCountries returns the n countries with the most locations, descending.
func (s *AggregateService) TopCountries(n int) []CategoryCount {
	counts := CountByCategory(s.source.AllRecords(), func(r models.LocationRecord) string {
		return r.CountryCode
	})
	return TopN(counts, n)
}

// OwnershipDistribution returns location counts grouped by ownership type,
// descending by count.
func (s *AggregateService) OwnershipDistribution() []CategoryCount {
	counts := CountByCategory(s.source.AllRecords(), func(r models.LocationRecord) string {
		return string(r.Ownership)
	})
	return TopN(counts, len(counts))
}

// MonthlyAdditions returns, per calendar month, how many locations entered
// the dataset. An empty city matches all records.
func (s *AggregateService) MonthlyAdditions(city string) []MonthCount {
	records := s.source.AllRecords()
	if city != "" {
		var subset []models.LocationRecord
		for _, record := range records {
			if record.City == city {
				subset = append(subset, record)
			}
		}
		records = subset
	}
	return CountByMonth(records)
}

// CountByCategory groups records by the key selector and counts each group.
// The result is ordered by first occurrence of each key; records whose key
// is empty are not counted, so the counts sum to the number of records with
// a non-empty key.
func CountByCategory(records []models.LocationRecord, key func(models.LocationRecord) string) []CategoryCount {
	var counts []CategoryCount
	index := make(map[string]int)
	for _, record := range records {
		k := key(record)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, CategoryCount{Category: k, Count: 1})
	}
	return counts
}

// TopN returns the n largest counts in descending order. The sort is
// stable, so equal counts keep their first-occurrence order.
func TopN(counts []CategoryCount, n int) []CategoryCount {
	if n < 0 {
		n = 0
	}
	sorted := make([]CategoryCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CountByMonth buckets records by the calendar month of their first-seen
// date and counts each bucket, chronologically ascending. Months with no
// records are omitted rather than reported as zero. Records with no parsed
// first-seen date are skipped.
func CountByMonth(records []models.LocationRecord) []MonthCount {
	buckets := make(map[time.Time]int)
	for _, record := range records {
		if record.FirstSeen == nil {
			continue
		}
		month := time.Date(record.FirstSeen.Year(), record.FirstSeen.Month(), 1, 0, 0, 0, 0, time.UTC)
		buckets[month]++
	}

	months := make([]MonthCount, 0, len(buckets))
	for month, count := range buckets {
		months = append(months, MonthCount{Month: month, Count: count})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})
	return months
}
