package provider

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"

	"oxywell/models"
)

// Default rating shown for providers that have never been reviewed.
const defaultRating = 4.5

// defaultCategory is applied when a provider row carries no business type.
const defaultCategory = "Wellness"

// Normalize converts one raw storage row into the canonical Provider shape.
// It is total: any malformed field degrades to its documented default instead
// of failing the record, so the worst-case empty row still yields a fully
// populated Provider.
func Normalize(raw models.RawProviderRecord) models.Provider {
	categories := []string{defaultCategory}
	if strings.TrimSpace(raw.BusinessType) != "" {
		categories = []string{raw.BusinessType}
	}

	return models.Provider{
		ID:               coerceID(raw.ID),
		Name:             raw.Name,
		Rating:           coerceFloat(raw.Rating, defaultRating),
		ReviewCount:      coerceCount(raw.ReviewCount),
		Latitude:         coerceFloat(raw.Latitude, 0),
		Longitude:        coerceFloat(raw.Longitude, 0),
		Address:          raw.Address,
		Location:         deriveLocation(raw.Address),
		Categories:       categories,
		Directions:       directionsURL(raw.Address),
		Image:            raw.Image,
		Phone:            raw.Phone,
		Website:          raw.Website,
		Email:            raw.Email,
		Hours:            hoursString(raw.Hours),
		PressureCapacity: raw.PressureCapacity,
		ChamberType:      raw.ChamberType,
		Description:      raw.Description,
		BookingLink:      raw.BookingLink,
	}
}

// coerceFloat applies the canonical numeric coercion: numbers pass through,
// numeric strings are parsed, everything else (nil, objects, unparseable
// strings, NaN/Inf) falls back to the given default.
func coerceFloat(v interface{}, fallback float64) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return fallback
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return fallback
		}
		f = parsed
	default:
		return fallback
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// coerceCount coerces a review count to a non-negative integer.
func coerceCount(v interface{}) int {
	n := int(coerceFloat(v, 0))
	if n < 0 {
		return 0
	}
	return n
}

// coerceID renders whatever identifier type storage handed us as a string.
func coerceID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(id), 'f', -1, 32)
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

// CoerceBool interprets the loosely typed "approved" flag: real booleans pass
// through, the string "true" (any case) is true, everything else is false.
func CoerceBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	default:
		return false
	}
}

// hoursString flattens the hours field to a string so rendering never has to
// branch on shape: strings pass through, structured values are serialized.
func hoursString(v interface{}) string {
	switch h := v.(type) {
	case nil:
		return ""
	case string:
		return h
	default:
		data, err := json.Marshal(h)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// deriveLocation keeps everything after the first comma of the address, which
// by convention drops the street segment and keeps city/region. No comma
// means no derivable locality.
func deriveLocation(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(strings.Join(parts[1:], ","))
}

// directionsURL builds a Google Maps search link for the raw address. Always
// present, even for an empty address, so clients never null-check it.
func directionsURL(address string) string {
	return "https://maps.google.com/?q=" + url.QueryEscape(address)
}
