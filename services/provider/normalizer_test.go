package provider

import (
	"encoding/json"
	"math"
	"testing"

	"oxywell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmptyRecord(t *testing.T) {
	p := Normalize(models.RawProviderRecord{})

	assert.Equal(t, "", p.ID)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 0, p.ReviewCount)
	assert.Equal(t, 0.0, p.Latitude)
	assert.Equal(t, 0.0, p.Longitude)
	assert.Equal(t, "", p.Location)
	assert.Equal(t, []string{"Wellness"}, p.Categories)
	assert.Equal(t, "https://maps.google.com/?q=", p.Directions)
	assert.Equal(t, "", p.Hours)
}

func TestNormalizeNumericCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", 40.7128, 40.7128},
		{"int", 40, 40.0},
		{"numeric string", "40.7128", 40.7128},
		{"padded string", "  40.7128 ", 40.7128},
		{"json number", json.Number("40.7128"), 40.7128},
		{"garbage string", "not-a-number", 0},
		{"nil", nil, 0},
		{"object", map[string]string{"lat": "40"}, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Normalize(models.RawProviderRecord{Latitude: tc.in})
			assert.Equal(t, tc.want, p.Latitude)
		})
	}
}

func TestNormalizeRatingFallback(t *testing.T) {
	assert.Equal(t, 4.5, Normalize(models.RawProviderRecord{Rating: nil}).Rating)
	assert.Equal(t, 4.5, Normalize(models.RawProviderRecord{Rating: "five stars"}).Rating)
	assert.Equal(t, 3.2, Normalize(models.RawProviderRecord{Rating: "3.2"}).Rating)
	assert.Equal(t, 3.2, Normalize(models.RawProviderRecord{Rating: 3.2}).Rating)
}

func TestNormalizeReviewCountNeverNegative(t *testing.T) {
	assert.Equal(t, 0, Normalize(models.RawProviderRecord{ReviewCount: -3}).ReviewCount)
	assert.Equal(t, 12, Normalize(models.RawProviderRecord{ReviewCount: "12"}).ReviewCount)
	assert.Equal(t, 0, Normalize(models.RawProviderRecord{ReviewCount: nil}).ReviewCount)
}

func TestNormalizeLocationDerivation(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"12 Harbor St, Portland, ME", "Portland, ME"},
		{"Portland", ""},
		{"", ""},
		{"12 Harbor St,   Portland", "Portland"},
	}
	for _, tc := range cases {
		p := Normalize(models.RawProviderRecord{Address: tc.address})
		assert.Equal(t, tc.want, p.Location, "address %q", tc.address)
	}
}

func TestNormalizeDirectionsEscaping(t *testing.T) {
	p := Normalize(models.RawProviderRecord{Address: "12 Harbor St, Portland & Co"})
	assert.Equal(t, "https://maps.google.com/?q=12+Harbor+St%2C+Portland+%26+Co", p.Directions)
}

func TestNormalizeHours(t *testing.T) {
	assert.Equal(t, "9-5", Normalize(models.RawProviderRecord{Hours: "9-5"}).Hours)

	p := Normalize(models.RawProviderRecord{Hours: map[string]interface{}{"mon": "9-5"}})
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(p.Hours), &decoded))
	assert.Equal(t, "9-5", decoded["mon"])
}

func TestNormalizeCategories(t *testing.T) {
	assert.Equal(t, []string{"Hyperbaric Clinic"},
		Normalize(models.RawProviderRecord{BusinessType: "Hyperbaric Clinic"}).Categories)
	assert.Equal(t, []string{"Wellness"},
		Normalize(models.RawProviderRecord{BusinessType: "   "}).Categories)
}

func TestNormalizeIDCoercion(t *testing.T) {
	assert.Equal(t, "abc", Normalize(models.RawProviderRecord{ID: "abc"}).ID)
	assert.Equal(t, "42", Normalize(models.RawProviderRecord{ID: float64(42)}).ID)
	assert.Equal(t, "42", Normalize(models.RawProviderRecord{ID: int64(42)}).ID)
	assert.Equal(t, "", Normalize(models.RawProviderRecord{ID: nil}).ID)
}

func TestCoerceBool(t *testing.T) {
	assert.True(t, CoerceBool(true))
	assert.True(t, CoerceBool("true"))
	assert.True(t, CoerceBool("TRUE"))
	assert.False(t, CoerceBool("yes"))
	assert.False(t, CoerceBool(1))
	assert.False(t, CoerceBool(nil))
}
