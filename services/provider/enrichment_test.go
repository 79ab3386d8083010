package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"oxywell/models"
	"oxywell/services/geocode"
	"oxywell/services/places"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	mu    sync.Mutex
	calls []string
	fn    func(address string) (*models.Coordinate, error)
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*models.Coordinate, error) {
	f.mu.Lock()
	f.calls = append(f.calls, address)
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(address)
	}
	return &models.Coordinate{Lat: 1, Lng: 2}, nil
}

type fakePlaces struct {
	mu    sync.Mutex
	calls int
	fn    func(name, address string) (*places.Details, error)
}

func (f *fakePlaces) Lookup(ctx context.Context, name, address string) (*places.Details, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(name, address)
	}
	return nil, nil
}

func newTestService(g geocode.Geocoder, p places.Client) *DefaultProviderService {
	return &DefaultProviderService{
		Geocoder:    g,
		Places:      p,
		Throttle:    geocode.NewThrottle(0),
		EnrichLimit: DefaultEnrichLimit,
	}
}

func TestEnrichFillsMissingCoordinates(t *testing.T) {
	geo := &fakeGeocoder{fn: func(address string) (*models.Coordinate, error) {
		return &models.Coordinate{Lat: 43.66, Lng: -70.25}, nil
	}}
	svc := newTestService(geo, nil)

	in := []models.Provider{
		{ID: "a", Address: "12 Harbor St, Portland"},
	}
	out := svc.Enrich(context.Background(), in)

	require.Len(t, out, 1)
	assert.Equal(t, 43.66, out[0].Latitude)
	assert.Equal(t, -70.25, out[0].Longitude)
	// Caller's slice is untouched.
	assert.Equal(t, 0.0, in[0].Latitude)
}

func TestEnrichSkipsProvidersWithCoordinates(t *testing.T) {
	geo := &fakeGeocoder{}
	svc := newTestService(geo, nil)

	in := []models.Provider{
		{ID: "a", Address: "somewhere", Latitude: 10, Longitude: 20},
		{ID: "b", Address: "elsewhere"},
	}
	out := svc.Enrich(context.Background(), in)

	assert.Equal(t, []string{"elsewhere"}, geo.calls)
	assert.Equal(t, 10.0, out[0].Latitude)
	assert.Equal(t, 20.0, out[0].Longitude)
}

func TestEnrichIsIdempotent(t *testing.T) {
	geo := &fakeGeocoder{fn: func(address string) (*models.Coordinate, error) {
		return &models.Coordinate{Lat: 5, Lng: 6}, nil
	}}
	svc := newTestService(geo, nil)

	in := []models.Provider{{ID: "a", Address: "addr"}}
	once := svc.Enrich(context.Background(), in)
	twice := svc.Enrich(context.Background(), once)

	assert.Equal(t, once, twice)
	// Second pass never re-geocodes resolved rows.
	assert.Len(t, geo.calls, 1)
}

func TestEnrichSurvivesGeocodeFailures(t *testing.T) {
	geo := &fakeGeocoder{fn: func(address string) (*models.Coordinate, error) {
		switch address {
		case "bad":
			return nil, errors.New("upstream down")
		case "unknown":
			return nil, nil
		default:
			return &models.Coordinate{Lat: 1, Lng: 1}, nil
		}
	}}
	svc := newTestService(geo, nil)

	in := []models.Provider{
		{ID: "a", Address: "bad"},
		{ID: "b", Address: "unknown"},
		{ID: "c", Address: "good"},
	}
	out := svc.Enrich(context.Background(), in)

	require.Len(t, out, 3)
	assert.False(t, out[0].HasCoordinates())
	assert.False(t, out[1].HasCoordinates())
	assert.True(t, out[2].HasCoordinates())
}

func TestEnrichPreservesLengthAndOrder(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	in := make([]models.Provider, 10)
	for i := range in {
		in[i] = models.Provider{ID: fmt.Sprintf("p%d", i), Address: fmt.Sprintf("addr %d", i)}
	}
	out := svc.Enrich(context.Background(), in)

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
	}
}

func TestEnrichPlaceDetailsLimitedToHead(t *testing.T) {
	pl := &fakePlaces{fn: func(name, address string) (*places.Details, error) {
		return &places.Details{PlaceID: "place-" + name, Rating: 4.8, RatingsTotal: 120}, nil
	}}
	svc := newTestService(&fakeGeocoder{}, pl)

	in := make([]models.Provider, 10)
	for i := range in {
		in[i] = models.Provider{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("n%d", i), Latitude: 1, Longitude: 1}
	}
	out := svc.Enrich(context.Background(), in)

	assert.Equal(t, DefaultEnrichLimit, pl.calls)
	for i := 0; i < DefaultEnrichLimit; i++ {
		assert.Equal(t, "place-"+out[i].Name, out[i].PlaceID, "index %d", i)
		assert.Equal(t, 4.8, out[i].GoogleRating)
	}
	for i := DefaultEnrichLimit; i < len(out); i++ {
		assert.Empty(t, out[i].PlaceID, "index %d should not be enhanced", i)
	}
}

func TestEnrichPlaceDetailsFailureKeepsBaseShape(t *testing.T) {
	pl := &fakePlaces{fn: func(name, address string) (*places.Details, error) {
		return nil, errors.New("quota exceeded")
	}}
	svc := newTestService(&fakeGeocoder{}, pl)

	in := []models.Provider{{ID: "a", Name: "Clinic", Latitude: 1, Longitude: 1}}
	out := svc.Enrich(context.Background(), in)

	require.Len(t, out, 1)
	assert.Empty(t, out[0].PlaceID)
	assert.Equal(t, "Clinic", out[0].Name)
}

func TestEnrichShorterBatchThanLimit(t *testing.T) {
	pl := &fakePlaces{}
	svc := newTestService(&fakeGeocoder{}, pl)

	in := []models.Provider{
		{ID: "a", Latitude: 1, Longitude: 1},
		{ID: "b", Latitude: 1, Longitude: 1},
	}
	svc.Enrich(context.Background(), in)

	assert.Equal(t, 2, pl.calls)
}

func TestEnrichCancelledContextStopsGeocoding(t *testing.T) {
	geo := &fakeGeocoder{}
	svc := newTestService(geo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := []models.Provider{
		{ID: "a", Address: "x"},
		{ID: "b", Address: "y"},
	}
	out := svc.Enrich(ctx, in)

	require.Len(t, out, 2)
	assert.Empty(t, geo.calls)
}
