package geo

import (
	"errors"

	"storelocator-api/internal/models"

	"github.com/golang/geo/s2"
)

// ErrUndefinedDistance signals that a distance cannot be computed because
// one of the endpoints lacks valid coordinates.
var ErrUndefinedDistance = errors.New("geo: distance undefined for invalid coordinates")

// Mean Earth radius, matching the unit the distances are reported in.
const earthRadiusMiles = 3958.7613

// Distance returns the great-circle distance between two points in miles.
// It is symmetric and returns exactly zero for identical points.
func Distance(a, b models.Coordinates) (float64, error) {
	if !a.InRange() || !b.InRange() {
		return 0, ErrUndefinedDistance
	}
	if a == b {
		return 0, nil
	}

	lla := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	llb := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return lla.Distance(llb).Radians() * earthRadiusMiles, nil
}
