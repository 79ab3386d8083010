package provider

import (
	"context"
	"sync"

	"oxywell/models"
	"oxywell/utils"

	"go.uber.org/zap"
)

// Enrich fills in missing coordinates and, for a bounded head subset, place
// details. The result has the same length and order as the input; every
// element is a fresh value, never a mutation of the caller's slice.
//
// Geocoding runs strictly sequentially behind the throttle because the
// upstream service rate-limits per client. Place details hit a separate quota
// domain and run concurrently. A failure on one provider never aborts the
// batch: that provider keeps its sentinel coordinates or its unenhanced
// shape and processing continues.
func (s *DefaultProviderService) Enrich(ctx context.Context, providers []models.Provider) []models.Provider {
	logger := utils.GetLogger()

	out := make([]models.Provider, len(providers))
	copy(out, providers)

	for i := range out {
		if out[i].HasCoordinates() {
			continue
		}
		if err := s.Throttle.Wait(ctx); err != nil {
			logger.Warn("geocode throttle interrupted", zap.Error(err))
			break
		}
		coord, err := s.Geocoder.Geocode(ctx, out[i].Address)
		if err != nil {
			logger.Warn("geocoding failed",
				zap.String("providerId", out[i].ID),
				zap.String("address", out[i].Address),
				zap.Error(err))
			continue
		}
		if coord == nil {
			continue
		}
		out[i].Latitude = coord.Lat
		out[i].Longitude = coord.Lng
	}

	if s.Places == nil {
		return out
	}

	limit := s.EnrichLimit
	if limit <= 0 {
		limit = DefaultEnrichLimit
	}
	if limit > len(out) {
		limit = len(out)
	}

	var wg sync.WaitGroup
	for i := 0; i < limit; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			details, err := s.Places.Lookup(ctx, out[i].Name, out[i].Address)
			if err != nil {
				logger.Warn("place details lookup failed",
					zap.String("providerId", out[i].ID),
					zap.Error(err))
				return
			}
			if details == nil {
				return
			}
			out[i].PlaceID = details.PlaceID
			out[i].GooglePhotos = details.PhotoURLs
			out[i].GoogleRating = details.Rating
			out[i].GoogleRatingsTotal = details.RatingsTotal
			out[i].GoogleFormattedAddress = details.FormattedAddress
		}(i)
	}
	wg.Wait()

	return out
}
