package provider

import (
	"context"
	"fmt"

	"oxywell/models"

	"github.com/google/uuid"
)

// ListProviders returns the approved directory: raw rows filtered on the
// approved flag, normalized, then enriched.
func (s *DefaultProviderService) ListProviders(ctx context.Context) ([]models.Provider, error) {
	raws, err := s.Repo.GetAllRaw()
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	providers := make([]models.Provider, 0, len(raws))
	for _, raw := range raws {
		if !CoerceBool(raw.Approved) {
			continue
		}
		providers = append(providers, Normalize(raw))
	}
	return s.Enrich(ctx, providers), nil
}

// GetProviderByID returns one provider in canonical enriched shape.
func (s *DefaultProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	raw, err := s.Repo.GetRawByID(id)
	if err != nil {
		return nil, NotFoundError{ID: id}
	}
	enriched := s.Enrich(ctx, []models.Provider{Normalize(*raw)})
	return &enriched[0], nil
}

// CreateProvider inserts a new raw row, assigning an id when the source
// supplied none, and returns the canonical shape.
func (s *DefaultProviderService) CreateProvider(ctx context.Context, raw models.RawProviderRecord) (*models.Provider, error) {
	if coerceID(raw.ID) == "" {
		raw.ID = uuid.NewString()
	}
	if err := s.Repo.Create(&raw); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	p := Normalize(raw)
	return &p, nil
}

// UpdateProvider patches the stored row and returns the fresh canonical
// shape. The patch is applied to the raw document, so loosely typed values
// pass through the same normalization as reads.
func (s *DefaultProviderService) UpdateProvider(ctx context.Context, id string, updates map[string]interface{}) (*models.Provider, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no update fields provided")
	}
	if err := s.Repo.UpdateFields(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update provider %s: %w", id, err)
	}
	raw, err := s.Repo.GetRawByID(id)
	if err != nil {
		return nil, NotFoundError{ID: id}
	}
	p := Normalize(*raw)
	return &p, nil
}

// DeleteProvider removes the stored row.
func (s *DefaultProviderService) DeleteProvider(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete provider %s: %w", id, err)
	}
	return nil
}
