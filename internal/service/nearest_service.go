package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"storelocator-api/internal/geo"
	"storelocator-api/internal/geocode"
	"storelocator-api/internal/models"
)

// LocationSource provides read access to the loaded dataset.
type LocationSource interface {
	AllRecords() []models.LocationRecord
}

// NearestService contains the core business logic for nearest-locations
// queries: place-name resolution followed by a ranked distance scan.
type NearestService struct {
	resolver       geocode.Resolver
	source         LocationSource
	resolveTimeout time.Duration
}

// NewNearestService creates a new nearest-locations service. The timeout
// bounds every resolver call so a stalled geocoder cannot hang a query.
func NewNearestService(resolver geocode.Resolver, source LocationSource, resolveTimeout time.Duration) *NearestService {
	return &NearestService{resolver: resolver, source: source, resolveTimeout: resolveTimeout}
}

// Nearest resolves a place name and returns the k closest locations with
// valid coordinates, ranked by distance. A place the resolver cannot find,
// or a resolver that runs out of time, surfaces as geocode.ErrNotFound.
func (s *NearestService) Nearest(ctx context.Context, place string, k int) (*models.NearestResult, error) {
	if place == "" {
		return nil, fmt.Errorf("service: place name cannot be empty")
	}
	if k <= 0 {
		return nil, fmt.Errorf("service: k must be positive, got %d", k)
	}

	ctx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	point, err := s.resolver.Resolve(ctx, place)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) || errors.Is(err, context.DeadlineExceeded) {
			return nil, geocode.ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to resolve place: %w", err)
	}

	return &models.NearestResult{
		QueryPoint: point,
		Locations:  Rank(point, s.source.AllRecords(), k),
	}, nil
}

// Rank scores every record with valid coordinates by its distance from the
// query point and returns the k closest, ascending. The sort is stable, so
// records at equal distance keep their original dataset order. Records
// without valid coordinates are excluded rather than scored. An empty
// result is a normal outcome, not an error.
func Rank(point models.QueryPoint, records []models.LocationRecord, k int) []models.RankedLocation {
	origin := point.Coordinates()

	ranked := make([]models.RankedLocation, 0, len(records))
	for _, record := range records {
		if !record.HasValidCoordinates() {
			continue
		}
		miles, err := geo.Distance(origin, *record.Coordinates)
		if err != nil {
			continue
		}
		ranked = append(ranked, models.RankedLocation{Location: record, DistanceMiles: miles})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMiles < ranked[j].DistanceMiles
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
