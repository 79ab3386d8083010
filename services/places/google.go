package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	findPlaceURL    = "https://maps.googleapis.com/maps/api/place/findplacefromtext/json"
	placeDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"
	placePhotoURL   = "https://maps.googleapis.com/maps/api/place/photo"

	maxPhotos     = 3
	photoMaxWidth = 800
)

// GoogleClient implements Client against the Google Places API using the
// two-step find-place-from-text then place-details flow.
type GoogleClient struct {
	apiKey     string
	httpClient *http.Client

	// Endpoint overrides; empty means the production Google endpoints.
	findPlaceURL string
	detailsURL   string
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithHTTPClient overrides the underlying HTTP client, primarily for tests.
func (c *GoogleClient) WithHTTPClient(client *http.Client) *GoogleClient {
	c.httpClient = client
	return c
}

// WithBaseURLs points the client at alternate endpoints. Tests use this to
// target an httptest server.
func (c *GoogleClient) WithBaseURLs(findPlace, details string) *GoogleClient {
	c.findPlaceURL = findPlace
	c.detailsURL = details
	return c
}

type findPlaceResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		FormattedAddress string  `json:"formatted_address"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"result"`
}

// Lookup finds the place matching name and address and fetches its details.
// Returns (nil, nil) when Google has no candidate for the query.
func (c *GoogleClient) Lookup(ctx context.Context, name, address string) (*Details, error) {
	placeID, err := c.findPlace(ctx, name, address)
	if err != nil {
		return nil, err
	}
	if placeID == "" {
		return nil, nil
	}

	details, err := c.details(ctx, placeID)
	if err != nil {
		return nil, err
	}
	details.PlaceID = placeID
	return details, nil
}

func (c *GoogleClient) findPlace(ctx context.Context, name, address string) (string, error) {
	params := url.Values{}
	params.Set("input", name+" "+address)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id")
	params.Set("key", c.apiKey)

	var out findPlaceResponse
	if err := c.getJSON(ctx, c.findPlaceEndpoint()+"?"+params.Encode(), &out); err != nil {
		return "", fmt.Errorf("find place request failed: %w", err)
	}
	if out.Status != "OK" || len(out.Candidates) == 0 {
		return "", nil
	}
	return out.Candidates[0].PlaceID, nil
}

func (c *GoogleClient) details(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "rating,user_ratings_total,formatted_address,photos")
	params.Set("key", c.apiKey)

	var out detailsResponse
	if err := c.getJSON(ctx, c.detailsEndpoint()+"?"+params.Encode(), &out); err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}
	if out.Status != "OK" {
		return nil, fmt.Errorf("place details status: %s", out.Status)
	}

	d := &Details{
		Rating:           out.Result.Rating,
		RatingsTotal:     out.Result.UserRatingsTotal,
		FormattedAddress: out.Result.FormattedAddress,
	}
	for i, photo := range out.Result.Photos {
		if i >= maxPhotos {
			break
		}
		d.PhotoURLs = append(d.PhotoURLs, c.PhotoURL(photo.PhotoReference, photoMaxWidth))
	}
	return d, nil
}

// PhotoURL converts a photo reference token into a fetchable image URL. Pure
// string formatting, no network call.
func (c *GoogleClient) PhotoURL(reference string, maxWidth int) string {
	params := url.Values{}
	params.Set("photo_reference", reference)
	params.Set("maxwidth", fmt.Sprintf("%d", maxWidth))
	params.Set("key", c.apiKey)
	return placePhotoURL + "?" + params.Encode()
}

func (c *GoogleClient) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *GoogleClient) findPlaceEndpoint() string {
	if c.findPlaceURL != "" {
		return c.findPlaceURL
	}
	return findPlaceURL
}

func (c *GoogleClient) detailsEndpoint() string {
	if c.detailsURL != "" {
		return c.detailsURL
	}
	return placeDetailsURL
}
