package models

// RawProviderRecord is the untrusted shape a provider row has in storage.
// Legacy rows were written by several different import scripts, so numeric
// fields may arrive as strings, booleans may arrive as "true"/"false", and
// hours may be either a plain string or a nested weekday document. The
// normalizer in services/provider is the only consumer of this type.
type RawProviderRecord struct {
	ID               interface{} `bson:"id" json:"id"`
	Name             string      `bson:"name" json:"name"`
	Rating           interface{} `bson:"rating" json:"rating"`
	ReviewCount      interface{} `bson:"reviewCount" json:"review_count"`
	Address          string      `bson:"address" json:"address"`
	Image            string      `bson:"image" json:"image"`
	Latitude         interface{} `bson:"latitude" json:"latitude"`
	Longitude        interface{} `bson:"longitude" json:"longitude"`
	Phone            string      `bson:"phone" json:"phone"`
	Website          string      `bson:"website" json:"website"`
	Email            string      `bson:"email" json:"email"`
	Hours            interface{} `bson:"hours" json:"hours"`
	PressureCapacity string      `bson:"pressureCapacity" json:"pressure_capacity"`
	ChamberType      string      `bson:"chamberType" json:"chamber_type"`
	Description      string      `bson:"description" json:"description"`
	BusinessType     string      `bson:"businessType" json:"business_type"`
	BookingLink      string      `bson:"bookingLink" json:"booking_link"`
	Approved         interface{} `bson:"approved" json:"approved"`
}

// Provider is the canonical provider shape served by the directory. Every
// instance is produced by the normalizer, so all fields are populated: numeric
// fields are never NaN, optional strings default to "", and (0,0) coordinates
// mean "not yet geocoded".
type Provider struct {
	ID               string   `bson:"id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Rating           float64  `bson:"rating" json:"rating"`
	ReviewCount      int      `bson:"reviewCount" json:"reviewCount"`
	Latitude         float64  `bson:"latitude" json:"latitude"`
	Longitude        float64  `bson:"longitude" json:"longitude"`
	Address          string   `bson:"address" json:"address"`
	Location         string   `bson:"location" json:"location"`
	Categories       []string `bson:"categories" json:"categories"`
	Directions       string   `bson:"directions" json:"directions"`
	Image            string   `bson:"image" json:"image"`
	Phone            string   `bson:"phone" json:"phone"`
	Website          string   `bson:"website" json:"website"`
	Email            string   `bson:"email" json:"email"`
	Hours            string   `bson:"hours" json:"hours"`
	PressureCapacity string   `bson:"pressureCapacity" json:"pressureCapacity"`
	ChamberType      string   `bson:"chamberType" json:"chamberType"`
	Description      string   `bson:"description" json:"description"`
	BookingLink      string   `bson:"bookingLink" json:"bookingLink"`

	// Filled in by place-details enrichment; zero values mean "not enriched".
	PlaceID                string   `bson:"placeId,omitempty" json:"placeId,omitempty"`
	GooglePhotos           []string `bson:"googlePhotos,omitempty" json:"googlePhotos,omitempty"`
	GoogleRating           float64  `bson:"googleRating,omitempty" json:"googleRating,omitempty"`
	GoogleRatingsTotal     int      `bson:"googleRatingsTotal,omitempty" json:"googleRatingsTotal,omitempty"`
	GoogleFormattedAddress string   `bson:"googleFormattedAddress,omitempty" json:"googleFormattedAddress,omitempty"`
}

// HasCoordinates reports whether the provider has been geocoded. (0,0) is the
// sentinel for unknown coordinates.
func (p Provider) HasCoordinates() bool {
	return p.Latitude != 0 || p.Longitude != 0
}

// Coordinate is a resolved latitude/longitude pair. A nil *Coordinate means
// the address could not be resolved; a non-nil value is always fully
// populated.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
