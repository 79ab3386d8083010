package geocode

import (
	"context"

	"oxywell/models"
)

// CacheMode selects the cache policy for outbound lookups. The geocoder holds
// no cache state itself; the mode only controls the request headers sent to
// the upstream service.
type CacheMode int

const (
	// CacheReadHeavy lets intermediate HTTP caches reuse responses. Used by
	// page-driven lookups where a stale answer is fine.
	CacheReadHeavy CacheMode = iota
	// CacheForceFresh bypasses intermediate caches. Used by the bulk
	// re-geocode job so stale upstream answers are not rewritten to storage.
	CacheForceFresh
)

// Geocoder resolves a free-text postal address to a coordinate pair.
//
// The return contract distinguishes three outcomes: (coord, nil) on a match,
// (nil, nil) when the address is empty or the service found no candidates,
// and (nil, err) when the lookup was attempted and failed. Callers doing
// best-effort enrichment treat the last two the same.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Coordinate, error)
}
