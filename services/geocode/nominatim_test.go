package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeEmptyAddressSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheReadHeavy)

	coord, err := g.Geocode(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, coord)
	assert.False(t, called)
}

func TestGeocodeSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "oxywell-test/1.0 (dev@example.com)", CacheReadHeavy)

	_, err := g.Geocode(context.Background(), "12 Harbor St, Portland")
	require.NoError(t, err)
	assert.Equal(t, "oxywell-test/1.0 (dev@example.com)", gotUA)
}

func TestGeocodeForceFreshSetsCacheControl(t *testing.T) {
	var gotCC string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCC = r.Header.Get("Cache-Control")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheForceFresh)
	_, err := g.Geocode(context.Background(), "somewhere")
	require.NoError(t, err)
	assert.Equal(t, "no-cache", gotCC)

	gotCC = "unset"
	g = NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheReadHeavy)
	_, err = g.Geocode(context.Background(), "somewhere")
	require.NoError(t, err)
	assert.Equal(t, "", gotCC)
}

func TestGeocodeFirstCandidateWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"lat": "43.6615", "lon": "-70.2553", "display_name": "Portland, ME"},
			{"lat": "45.5152", "lon": "-122.6784", "display_name": "Portland, OR"}
		]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheReadHeavy)
	coord, err := g.Geocode(context.Background(), "Portland")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 43.6615, coord.Lat, 1e-9)
	assert.InDelta(t, -70.2553, coord.Lng, 1e-9)
}

func TestGeocodeNumericLatLon(t *testing.T) {
	// Self-hosted deployments return bare numbers instead of strings.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": 43.6615, "lon": -70.2553}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheReadHeavy)
	coord, err := g.Geocode(context.Background(), "Portland")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 43.6615, coord.Lat, 1e-9)
}

func TestGeocodeNoMatchReturnsNilNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheReadHeavy)
	coord, err := g.Geocode(context.Background(), "nowhere at all")
	assert.NoError(t, err)
	assert.Nil(t, coord)
}

func TestGeocodeServerErrorReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheReadHeavy)
	coord, err := g.Geocode(context.Background(), "Portland")
	assert.Error(t, err)
	assert.Nil(t, coord)
}

func TestGeocodeMalformedBodyReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent/1.0", CacheReadHeavy)
	_, err := g.Geocode(context.Background(), "Portland")
	assert.Error(t, err)
}
