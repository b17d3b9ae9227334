package service

import (
	"errors"
	"sort"

	"storelocator-api/internal/models"
)

// ErrInvalidRange reports a date range whose start falls after its end.
// It is a caller error and is rejected before any record is scanned.
var ErrInvalidRange = errors.New("service: start date must not be after end date")

// FilterService contains the core business logic for filtering the dataset.
type FilterService struct {
	source LocationSource
}

// NewFilterService creates a new filter service.
func NewFilterService(source LocationSource) *FilterService {
	return &FilterService{source: source}
}

// Filter applies the criteria over the full dataset.
func (s *FilterService) Filter(criteria models.FilterCriteria) ([]models.LocationRecord, error) {
	return Apply(s.source.AllRecords(), criteria)
}

// Apply returns the records satisfying every predicate in the criteria, in
// input order. The equality predicates match-all when unset. The date range
// is inclusive on both ends; a record with no parsed first-seen date never
// matches. Widening the range or clearing a predicate can only grow the
// result, never shrink it.
func Apply(records []models.LocationRecord, criteria models.FilterCriteria) ([]models.LocationRecord, error) {
	if criteria.StartDate.After(criteria.EndDate) {
		return nil, ErrInvalidRange
	}

	var matched []models.LocationRecord
	for _, record := range records {
		if criteria.TimezoneID != "" && record.TimezoneID != criteria.TimezoneID {
			continue
		}
		if criteria.City != "" && record.City != criteria.City {
			continue
		}
		if criteria.CountryCode != "" && record.CountryCode != criteria.CountryCode {
			continue
		}
		if record.FirstSeen == nil {
			continue
		}
		if record.FirstSeen.Before(criteria.StartDate) || record.FirstSeen.After(criteria.EndDate) {
			continue
		}
		matched = append(matched, record)
	}
	return matched, nil
}

// SortByStoreID returns a copy of the records sorted ascending by store
// identifier. Re-sorting is an explicit operation layered on top of Apply,
// which itself always preserves input order.
func SortByStoreID(records []models.LocationRecord) []models.LocationRecord {
	sorted := make([]models.LocationRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StoreID < sorted[j].StoreID
	})
	return sorted
}
