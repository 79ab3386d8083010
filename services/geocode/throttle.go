package geocode

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle paces a sequence of geocoding calls. The public Nominatim endpoint
// enforces a one-request-per-second ceiling; batch callers wait on the
// throttle before every lookup instead of sleeping inline.
type Throttle struct {
	limiter *rate.Limiter
}

// Default intervals. The read path tolerates a tighter pace; the bulk admin
// job uses the full second the upstream terms ask for.
const (
	ReadInterval = 500 * time.Millisecond
	BulkInterval = time.Second
)

// NewThrottle returns a throttle that admits one call per interval with no
// burst, so consecutive Wait calls are spaced at least interval apart.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next call is admitted or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.limiter.Wait(ctx)
}
