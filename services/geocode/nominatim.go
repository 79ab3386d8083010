package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"oxywell/models"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder resolves addresses against a Nominatim-compatible search
// endpoint. The upstream service blocks clients without a descriptive
// User-Agent, so the identifier is mandatory.
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	cacheMode  CacheMode
	httpClient *http.Client
}

// NewNominatimGeocoder creates a geocoder. baseURL may be empty to use the
// public endpoint; userAgent must identify the calling application.
func NewNominatimGeocoder(baseURL, userAgent string, mode CacheMode) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &NominatimGeocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		cacheMode: mode,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithHTTPClient overrides the underlying HTTP client. Used by tests and by
// callers that need custom transport settings.
func (g *NominatimGeocoder) WithHTTPClient(client *http.Client) *NominatimGeocoder {
	g.httpClient = client
	return g
}

// nominatimResult is one candidate match. The public endpoint returns lat/lon
// as strings; some self-hosted deployments return numbers, so both are
// accepted.
type nominatimResult struct {
	Lat         flexFloat `json:"lat"`
	Lon         flexFloat `json:"lon"`
	DisplayName string    `json:"display_name"`
}

// Geocode resolves address to a coordinate pair. Empty or whitespace-only
// input returns (nil, nil) without a network call. When the service returns
// candidates, the first one wins; there is no disambiguation.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (*models.Coordinate, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := g.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	if g.cacheMode == CacheForceFresh {
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("geocode service returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &models.Coordinate{
		Lat: float64(results[0].Lat),
		Lng: float64(results[0].Lon),
	}, nil
}

// flexFloat decodes a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing coordinate %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}
