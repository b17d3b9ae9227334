package geo

import (
	"testing"

	"storelocator-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	boston := models.Coordinates{Latitude: 42.3601, Longitude: -71.0589}
	newYork := models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}

	tests := []struct {
		name          string
		a, b          models.Coordinates
		expectedMiles float64
		tolerance     float64
		expectError   bool
	}{
		{
			name:          "boston to new york",
			a:             boston,
			b:             newYork,
			expectedMiles: 190,
			tolerance:     5,
		},
		{
			name:          "identical points",
			a:             boston,
			b:             boston,
			expectedMiles: 0,
			tolerance:     0,
		},
		{
			name:        "latitude out of range",
			a:           models.Coordinates{Latitude: 999, Longitude: 0},
			b:           newYork,
			expectError: true,
		},
		{
			name:        "longitude out of range",
			a:           boston,
			b:           models.Coordinates{Latitude: 0, Longitude: -200},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Distance(tt.a, tt.b)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrUndefinedDistance)
				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.expectedMiles, d, tt.tolerance)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := models.Coordinates{Latitude: 42.3601, Longitude: -71.0589}
	b := models.Coordinates{Latitude: 35.6812, Longitude: 139.7671}

	ab, err := Distance(a, b)
	assert.NoError(t, err)

	ba, err := Distance(b, a)
	assert.NoError(t, err)

	assert.Equal(t, ab, ba)
}
