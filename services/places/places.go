package places

import "context"

// Details is the subset of place data the directory surfaces: ratings, a
// handful of photo URLs, and the formatted address Google resolved the
// business to.
type Details struct {
	PlaceID          string   `json:"placeId"`
	Rating           float64  `json:"rating"`
	RatingsTotal     int      `json:"ratingsTotal"`
	FormattedAddress string   `json:"formattedAddress"`
	PhotoURLs        []string `json:"photoUrls"`
}

// Client looks up place details for a business by name and address. A nil
// Details with nil error means the place could not be matched; errors are
// transport or upstream failures.
type Client interface {
	Lookup(ctx context.Context, name, address string) (*Details, error)
}
