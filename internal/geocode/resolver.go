package geocode

import (
	"context"
	"errors"

	"storelocator-api/internal/models"
)

// ErrNotFound reports that a place name could not be resolved to
// coordinates. It covers genuine no-match outcomes as well as resolver
// timeouts and transport failures, so callers see a single recoverable
// outcome instead of I/O errors.
var ErrNotFound = errors.New("geocode: location not found")

// Resolver turns a free-text place name into a query point.
type Resolver interface {
	Resolve(ctx context.Context, place string) (models.QueryPoint, error)
}
