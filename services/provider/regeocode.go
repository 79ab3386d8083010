package provider

import (
	"context"
	"fmt"

	"oxywell/utils"

	"go.uber.org/zap"
)

// RegeocodeAll walks every stored row still carrying sentinel coordinates and
// writes back freshly resolved ones. Each write is an independent per-row
// update, so an interrupted run leaves no partial state, and rows that
// already have coordinates are skipped, making repeated runs cheap no-ops.
//
// Intended to run behind the bulk throttle with a force-fresh geocoder; the
// background job in cron wires it that way.
func (s *DefaultProviderService) RegeocodeAll(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	raws, err := s.Repo.GetAllRaw()
	if err != nil {
		return 0, fmt.Errorf("failed to load providers for re-geocoding: %w", err)
	}

	updated := 0
	for _, raw := range raws {
		p := Normalize(raw)
		if p.HasCoordinates() || p.Address == "" {
			continue
		}
		if err := s.Throttle.Wait(ctx); err != nil {
			return updated, fmt.Errorf("re-geocode interrupted: %w", err)
		}
		coord, err := s.Geocoder.Geocode(ctx, p.Address)
		if err != nil {
			logger.Warn("re-geocode lookup failed",
				zap.String("providerId", p.ID),
				zap.String("address", p.Address),
				zap.Error(err))
			continue
		}
		if coord == nil {
			logger.Info("address unresolved", zap.String("providerId", p.ID), zap.String("address", p.Address))
			continue
		}
		if err := s.Repo.UpdateCoordinates(p.ID, coord.Lat, coord.Lng); err != nil {
			logger.Error("failed to persist coordinates",
				zap.String("providerId", p.ID),
				zap.Error(err))
			continue
		}
		updated++
	}

	logger.Info("bulk re-geocode finished", zap.Int("updated", updated), zap.Int("scanned", len(raws)))
	return updated, nil
}
