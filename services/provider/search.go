package provider

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"oxywell/models"
)

// SearchProviders filters the approved directory on a free-text query matched
// against name, location, categories and description. Matching happens on the
// normalized shape before enrichment so unmatched rows never cost an external
// lookup.
func (s *DefaultProviderService) SearchProviders(ctx context.Context, query string) ([]models.Provider, error) {
	raws, err := s.Repo.GetAllRaw()
	if err != nil {
		return nil, fmt.Errorf("failed to search providers: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matched []models.Provider
	for _, raw := range raws {
		if !CoerceBool(raw.Approved) {
			continue
		}
		p := Normalize(raw)
		if q == "" || matchesQuery(p, q) {
			matched = append(matched, p)
		}
	}
	return s.Enrich(ctx, matched), nil
}

// NearbyProviders returns approved providers with known coordinates within
// radiusKm of the given point, nearest first. Providers still carrying the
// sentinel coordinates are excluded rather than treated as near-equator.
func (s *DefaultProviderService) NearbyProviders(ctx context.Context, lat, lng, radiusKm float64) ([]models.Provider, error) {
	providers, err := s.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		provider models.Provider
		distance float64
	}
	var nearby []ranked
	for _, p := range providers {
		if !p.HasCoordinates() {
			continue
		}
		d := haversineKm(lat, lng, p.Latitude, p.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, ranked{provider: p, distance: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].distance < nearby[j].distance })

	out := make([]models.Provider, 0, len(nearby))
	for _, r := range nearby {
		out = append(out, r.provider)
	}
	return out, nil
}

func matchesQuery(p models.Provider, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Location), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, c := range p.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
