package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTwoStepFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/findplace", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Oxygen Springs 1 Main St, Denver", r.URL.Query().Get("input"))
		assert.Equal(t, "textquery", r.URL.Query().Get("inputtype"))
		w.Write([]byte(`{"status":"OK","candidates":[{"place_id":"abc123"}]}`))
	})
	mux.HandleFunc("/details", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.URL.Query().Get("place_id"))
		w.Write([]byte(`{"status":"OK","result":{
			"rating":4.7,
			"user_ratings_total":210,
			"formatted_address":"1 Main St, Denver, CO 80202, USA",
			"photos":[
				{"photo_reference":"ref1"},
				{"photo_reference":"ref2"},
				{"photo_reference":"ref3"},
				{"photo_reference":"ref4"}
			]}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewGoogleClient("test-key").WithBaseURLs(srv.URL+"/findplace", srv.URL+"/details")

	d, err := c.Lookup(context.Background(), "Oxygen Springs", "1 Main St, Denver")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "abc123", d.PlaceID)
	assert.Equal(t, 4.7, d.Rating)
	assert.Equal(t, 210, d.RatingsTotal)
	assert.Equal(t, "1 Main St, Denver, CO 80202, USA", d.FormattedAddress)
	// Photo URLs are capped at three.
	require.Len(t, d.PhotoURLs, 3)
	assert.Contains(t, d.PhotoURLs[0], "photo_reference=ref1")
	assert.Contains(t, d.PhotoURLs[0], "maxwidth=800")
}

func TestLookupNoCandidateReturnsNilNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGoogleClient("test-key").WithBaseURLs(srv.URL, srv.URL)

	d, err := c.Lookup(context.Background(), "Nowhere", "no such address")
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestLookupDetailsErrorPropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/findplace", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","candidates":[{"place_id":"abc123"}]}`))
	})
	mux.HandleFunc("/details", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewGoogleClient("test-key").WithBaseURLs(srv.URL+"/findplace", srv.URL+"/details")

	_, err := c.Lookup(context.Background(), "Clinic", "addr")
	assert.Error(t, err)
}

func TestPhotoURLIsPureFormatting(t *testing.T) {
	c := NewGoogleClient("test-key")
	u := c.PhotoURL("some-ref", 800)
	assert.True(t, strings.HasPrefix(u, "https://maps.googleapis.com/maps/api/place/photo?"))
	assert.Contains(t, u, "photo_reference=some-ref")
	assert.Contains(t, u, "maxwidth=800")
	assert.Contains(t, u, "key=test-key")
}
