package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oxywell/models"
	"oxywell/services/provider"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProviderService struct {
	providers []models.Provider
	nearbyReq struct {
		lat, lng, radiusKm float64
	}
}

func (s *stubProviderService) ListProviders(ctx context.Context) ([]models.Provider, error) {
	return s.providers, nil
}

func (s *stubProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	for i := range s.providers {
		if s.providers[i].ID == id {
			return &s.providers[i], nil
		}
	}
	return nil, provider.NotFoundError{ID: id}
}

func (s *stubProviderService) SearchProviders(ctx context.Context, query string) ([]models.Provider, error) {
	return s.providers, nil
}

func (s *stubProviderService) NearbyProviders(ctx context.Context, lat, lng, radiusKm float64) ([]models.Provider, error) {
	s.nearbyReq.lat, s.nearbyReq.lng, s.nearbyReq.radiusKm = lat, lng, radiusKm
	return s.providers, nil
}

func (s *stubProviderService) Enrich(ctx context.Context, in []models.Provider) []models.Provider {
	return in
}

func (s *stubProviderService) CreateProvider(ctx context.Context, raw models.RawProviderRecord) (*models.Provider, error) {
	return nil, nil
}

func (s *stubProviderService) UpdateProvider(ctx context.Context, id string, updates map[string]interface{}) (*models.Provider, error) {
	return nil, nil
}

func (s *stubProviderService) DeleteProvider(ctx context.Context, id string) error { return nil }

func (s *stubProviderService) RegeocodeAll(ctx context.Context) (int, error) { return 0, nil }

func newTestRouter(h *ProviderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/providers", h.ListProvidersHandler)
	r.GET("/api/providers/nearby", h.NearbyProvidersHandler)
	r.GET("/api/providers/:id", h.GetProviderByIDHandler)
	return r
}

func TestListProvidersHandler(t *testing.T) {
	h := NewProviderHandler(&stubProviderService{providers: []models.Provider{
		{ID: "a", Name: "Oxygen Springs"},
	}})
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Providers []models.Provider `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Providers, 1)
	assert.Equal(t, "Oxygen Springs", body.Providers[0].Name)
}

func TestGetProviderByIDHandlerNotFound(t *testing.T) {
	h := NewProviderHandler(&stubProviderService{})
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNearbyProvidersHandlerValidation(t *testing.T) {
	stub := &stubProviderService{}
	h := NewProviderHandler(stub)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/nearby?lat=oops&lng=1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/providers/nearby?lat=39.7&lng=-104.9", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50.0, stub.nearbyReq.radiusKm)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/providers/nearby?lat=39.7&lng=-104.9&radiusKm=10", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10.0, stub.nearbyReq.radiusKm)
}
