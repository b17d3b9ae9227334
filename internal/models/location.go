package models

import "time"

// OwnershipType classifies how a store location is operated.
type OwnershipType string

const (
	OwnershipCompanyOwned OwnershipType = "Company Owned"
	OwnershipLicensed     OwnershipType = "Licensed"
	OwnershipJointVenture OwnershipType = "Joint Venture"
	OwnershipFranchise    OwnershipType = "Franchise"
	OwnershipUnknown      OwnershipType = "Unknown"
)

// ParseOwnershipType maps a raw dataset value onto one of the known
// ownership categories. Unrecognized values fall back to OwnershipUnknown.
func ParseOwnershipType(s string) OwnershipType {
	switch OwnershipType(s) {
	case OwnershipCompanyOwned, OwnershipLicensed, OwnershipJointVenture, OwnershipFranchise:
		return OwnershipType(s)
	default:
		return OwnershipUnknown
	}
}

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InRange reports whether the point lies within the valid geographic range.
func (c Coordinates) InRange() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// LocationRecord represents a single store location from the source dataset.
// Records are immutable after load. Coordinates is nil when the source row
// carried missing, non-numeric or out-of-range values; such records are
// excluded from geospatial queries but still participate in filters and
// aggregations. FirstSeen is nil when the source timestamp failed to parse.
type LocationRecord struct {
	ID          int           `json:"id"`
	StoreID     string        `json:"store_id"`
	Name        string        `json:"name"`
	Ownership   OwnershipType `json:"ownership_type"`
	City        string        `json:"city"`
	CountryCode string        `json:"country_code"`
	PostalCode  string        `json:"postal_code"`
	PhoneNumber string        `json:"phone_number"`
	TimezoneID  string        `json:"timezone_id"`
	Coordinates *Coordinates  `json:"coordinates,omitempty"`
	FirstSeen   *time.Time    `json:"first_seen,omitempty"`
}

// HasValidCoordinates reports whether the record can be scored by distance.
func (r LocationRecord) HasValidCoordinates() bool {
	return r.Coordinates != nil && r.Coordinates.InRange()
}

// QueryPoint is a coordinate pair resolved from a free-text place name.
// It exists only for the lifetime of a single query.
type QueryPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinates converts the query point into a Coordinates value.
func (p QueryPoint) Coordinates() Coordinates {
	return Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}
}

// FilterCriteria describes the predicates applied by the filter engine.
// The date range is inclusive on both ends and must satisfy
// StartDate <= EndDate. The string predicates are exact matches; an empty
// value means match-all.
type FilterCriteria struct {
	TimezoneID  string
	City        string
	CountryCode string
	StartDate   time.Time
	EndDate     time.Time
}

// RankedLocation pairs a record with its distance from a query point.
type RankedLocation struct {
	Location      LocationRecord `json:"location"`
	DistanceMiles float64        `json:"distance_miles"`
}

// NearestResult is the outcome of a successful nearest-locations query.
type NearestResult struct {
	QueryPoint QueryPoint       `json:"query_point"`
	Locations  []RankedLocation `json:"locations"`
}
