package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	guidesCacheKey = "content:guides"
	postsCacheKey  = "content:posts"
	cacheTTL       = 15 * time.Minute
)

// ContentCache is a thin Redis cache in front of the content backends so the
// sheet API and database are not hit on every page view.
type ContentCache struct {
	client *redis.Client
}

func NewContentCache(client *redis.Client) *ContentCache {
	return &ContentCache{client: client}
}

func (c *ContentCache) get(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (c *ContentCache) set(ctx context.Context, key string, v interface{}) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	// Best effort; a cache write failure is invisible to callers.
	c.client.Set(ctx, key, data, cacheTTL)
}

// Invalidate drops both content keys. Called after post writes.
func (c *ContentCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, guidesCacheKey, postsCacheKey)
}
