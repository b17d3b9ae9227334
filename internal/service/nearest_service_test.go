package service

import (
	"context"
	"testing"
	"time"

	"storelocator-api/internal/geocode"
	"storelocator-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockResolver is a mock implementation of the geocode.Resolver interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, place string) (models.QueryPoint, error) {
	args := m.Called(ctx, place)
	return args.Get(0).(models.QueryPoint), args.Error(1)
}

// staticSource is a LocationSource over a fixed record slice
type staticSource struct {
	records []models.LocationRecord
}

func (s staticSource) AllRecords() []models.LocationRecord {
	return s.records
}

func record(id int, name string, lat, lon float64) models.LocationRecord {
	return models.LocationRecord{
		ID:          id,
		Name:        name,
		Coordinates: &models.Coordinates{Latitude: lat, Longitude: lon},
	}
}

func bostonScenario() []models.LocationRecord {
	return []models.LocationRecord{
		record(1, "A", 42.36, -71.06),
		record(2, "B", 42.37, -71.05),
		record(3, "C", 40.71, -74.00),
	}
}

func TestNearestService_Nearest(t *testing.T) {
	bostonCenter := models.QueryPoint{Latitude: 42.3601, Longitude: -71.0589}

	tests := []struct {
		name          string
		place         string
		k             int
		records       []models.LocationRecord
		mockPoint     models.QueryPoint
		mockError     error
		expectedNames []string
		expectedErr   error
		expectUsage   bool
	}{
		{
			name:          "two nearest of three",
			place:         "Boston",
			k:             2,
			records:       bostonScenario(),
			mockPoint:     bostonCenter,
			expectedNames: []string{"A", "B"},
		},
		{
			name:          "k larger than dataset",
			place:         "Boston",
			k:             10,
			records:       bostonScenario(),
			mockPoint:     bostonCenter,
			expectedNames: []string{"A", "B", "C"},
		},
		{
			name:  "records without valid coordinates are excluded",
			place: "Boston",
			k:     10,
			records: []models.LocationRecord{
				record(1, "A", 42.36, -71.06),
				{ID: 2, Name: "NoCoords"},
				{ID: 3, Name: "BadLat", Coordinates: &models.Coordinates{Latitude: 999, Longitude: -71.0}},
			},
			mockPoint:     bostonCenter,
			expectedNames: []string{"A"},
		},
		{
			name:          "no records with valid coordinates yields empty result",
			place:         "Boston",
			k:             5,
			records:       []models.LocationRecord{{ID: 1, Name: "NoCoords"}},
			mockPoint:     bostonCenter,
			expectedNames: []string{},
		},
		{
			name:        "resolver not found",
			place:       "Qwxyz123",
			k:           5,
			records:     bostonScenario(),
			mockError:   geocode.ErrNotFound,
			expectedErr: geocode.ErrNotFound,
		},
		{
			name:        "resolver timeout becomes not found",
			place:       "Boston",
			k:           5,
			records:     bostonScenario(),
			mockError:   context.DeadlineExceeded,
			expectedErr: geocode.ErrNotFound,
		},
		{
			name:        "empty place name",
			place:       "",
			k:           5,
			records:     bostonScenario(),
			expectUsage: true,
		},
		{
			name:        "non-positive k",
			place:       "Boston",
			k:           0,
			records:     bostonScenario(),
			expectUsage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockResolver := new(MockResolver)
			svc := NewNearestService(mockResolver, staticSource{records: tt.records}, time.Second)

			if tt.place != "" && tt.k > 0 {
				mockResolver.On("Resolve", mock.Anything, tt.place).Return(tt.mockPoint, tt.mockError)
			}

			result, err := svc.Nearest(context.Background(), tt.place, tt.k)

			if tt.expectUsage {
				assert.Error(t, err)
				return
			}
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.mockPoint, result.QueryPoint)

			names := make([]string, 0, len(result.Locations))
			for _, ranked := range result.Locations {
				names = append(names, ranked.Location.Name)
			}
			assert.Equal(t, tt.expectedNames, names)

			mockResolver.AssertExpectations(t)
		})
	}
}

func TestRank_SortedAscendingByDistance(t *testing.T) {
	point := models.QueryPoint{Latitude: 42.3601, Longitude: -71.0589}
	ranked := Rank(point, bostonScenario(), 3)

	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceMiles, ranked[i].DistanceMiles)
	}
}

func TestRank_TieBreakKeepsSourceOrder(t *testing.T) {
	// Two records at the exact same spot, distinguishable only by position.
	records := []models.LocationRecord{
		record(7, "First", 42.36, -71.06),
		record(3, "Second", 42.36, -71.06),
	}
	point := models.QueryPoint{Latitude: 42.3601, Longitude: -71.0589}

	ranked := Rank(point, records, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "First", ranked[0].Location.Name)
	assert.Equal(t, "Second", ranked[1].Location.Name)
}

func TestRank_EmptyRecords(t *testing.T) {
	point := models.QueryPoint{Latitude: 42.3601, Longitude: -71.0589}
	assert.Empty(t, Rank(point, nil, 5))
}
