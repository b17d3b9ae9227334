package geocode

import (
	"context"
	"strings"

	"storelocator-api/internal/models"

	"github.com/agnivade/levenshtein"
)

// Fuzzy matches tolerate small typos but nothing looser, so "Bostn" finds
// Boston while unrelated names stay unresolved.
const maxFuzzyDistance = 2

type gazetteerEntry struct {
	name  string // lowercased city name
	point models.QueryPoint
}

// Gazetteer is an offline resolver built from the dataset itself: each
// distinct city maps to the centroid of its valid-coordinate records.
// Lookup is case-insensitive exact match first, then Levenshtein fuzzy
// match; ambiguous city names resolve to their first occurrence in the
// dataset, which keeps results deterministic.
type Gazetteer struct {
	entries []gazetteerEntry
	exact   map[string]models.QueryPoint
}

// NewGazetteer derives city centroids from the given records. Records
// without valid coordinates contribute nothing.
func NewGazetteer(records []models.LocationRecord) *Gazetteer {
	type accumulator struct {
		latSum, lonSum float64
		count          int
	}

	var order []string
	sums := make(map[string]*accumulator)
	for _, record := range records {
		if record.City == "" || !record.HasValidCoordinates() {
			continue
		}
		name := strings.ToLower(record.City)
		acc, ok := sums[name]
		if !ok {
			acc = &accumulator{}
			sums[name] = acc
			order = append(order, name)
		}
		acc.latSum += record.Coordinates.Latitude
		acc.lonSum += record.Coordinates.Longitude
		acc.count++
	}

	g := &Gazetteer{exact: make(map[string]models.QueryPoint, len(order))}
	for _, name := range order {
		acc := sums[name]
		point := models.QueryPoint{
			Latitude:  acc.latSum / float64(acc.count),
			Longitude: acc.lonSum / float64(acc.count),
		}
		g.entries = append(g.entries, gazetteerEntry{name: name, point: point})
		g.exact[name] = point
	}
	return g
}

// Resolve implements Resolver over the in-memory city index.
func (g *Gazetteer) Resolve(ctx context.Context, place string) (models.QueryPoint, error) {
	if err := ctx.Err(); err != nil {
		return models.QueryPoint{}, err
	}

	name := strings.ToLower(strings.TrimSpace(place))
	if name == "" {
		return models.QueryPoint{}, ErrNotFound
	}

	if point, ok := g.exact[name]; ok {
		return point, nil
	}

	best := -1
	bestDist := maxFuzzyDistance + 1
	for i, entry := range g.entries {
		dist := levenshtein.ComputeDistance(name, entry.name)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best < 0 {
		return models.QueryPoint{}, ErrNotFound
	}
	return g.entries[best].point, nil
}
