package provider

import (
	"context"
	"fmt"

	providerRepo "oxywell/database/repository/provider"
	"oxywell/models"
	"oxywell/services/geocode"
	"oxywell/services/places"
)

// DefaultEnrichLimit caps how many providers per batch get the place-details
// lookup. Hard cost cap, not a ranking: callers pre-sort if featured
// providers must be enriched first.
const DefaultEnrichLimit = 6

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo        providerRepo.ProviderRepository
	Geocoder    geocode.Geocoder
	Places      places.Client
	Throttle    *geocode.Throttle
	EnrichLimit int
}

func NewDefaultProviderService(
	repo providerRepo.ProviderRepository,
	geocoder geocode.Geocoder,
	placesClient places.Client,
	throttle *geocode.Throttle,
) (*DefaultProviderService, error) {
	if repo == nil || geocoder == nil {
		return nil, fmt.Errorf("provider service initialization error: one or more dependencies are nil")
	}
	return &DefaultProviderService{
		Repo:        repo,
		Geocoder:    geocoder,
		Places:      placesClient,
		Throttle:    throttle,
		EnrichLimit: DefaultEnrichLimit,
	}, nil
}

type ProviderService interface {
	// Directory reads.
	ListProviders(ctx context.Context) ([]models.Provider, error)
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)
	SearchProviders(ctx context.Context, query string) ([]models.Provider, error)
	NearbyProviders(ctx context.Context, lat, lng, radiusKm float64) ([]models.Provider, error)

	// Enrichment.
	Enrich(ctx context.Context, providers []models.Provider) []models.Provider

	// Admin.
	CreateProvider(ctx context.Context, raw models.RawProviderRecord) (*models.Provider, error)
	UpdateProvider(ctx context.Context, id string, updates map[string]interface{}) (*models.Provider, error)
	DeleteProvider(ctx context.Context, id string) error
	RegeocodeAll(ctx context.Context) (int, error)
}
