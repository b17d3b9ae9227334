package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storelocator-api/internal/models"
)

// NominatimClient resolves place names against a Nominatim-compatible
// geocoding endpoint. Every failure mode at this boundary (timeout,
// transport error, unexpected status, empty result) collapses into
// ErrNotFound so the query engine never has to reason about I/O.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient creates a client for the given endpoint. The timeout
// bounds the whole request; Nominatim's usage policy requires a
// descriptive User-Agent.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Nominatim returns coordinates as JSON strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve implements Resolver against the /search endpoint.
func (c *NominatimClient) Resolve(ctx context.Context, place string) (models.QueryPoint, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(place))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.QueryPoint{}, fmt.Errorf("geocode: creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.QueryPoint{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.QueryPoint{}, fmt.Errorf("%w: geocoder returned HTTP %d", ErrNotFound, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.QueryPoint{}, fmt.Errorf("%w: decoding response: %v", ErrNotFound, err)
	}
	if len(results) == 0 {
		return models.QueryPoint{}, ErrNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return models.QueryPoint{}, fmt.Errorf("%w: malformed coordinates in response", ErrNotFound)
	}

	return models.QueryPoint{Latitude: lat, Longitude: lon}, nil
}
