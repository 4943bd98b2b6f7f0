package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"discbox/core/lookup"

	"github.com/go-redis/redis/v8"
)

// LookupCache keeps successful barcode resolutions in Redis so repeated
// scans of the same disc don't hit the public catalogs again.
type LookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLookupCache creates a lookup cache with the given TTL.
func NewLookupCache(client *redis.Client, ttl time.Duration) *LookupCache {
	return &LookupCache{client: client, ttl: ttl}
}

func lookupKey(kind, barcode string) string {
	return fmt.Sprintf("lookup:%s:%s", kind, barcode)
}

// Get returns the cached result for a barcode, or nil on a miss.
func (c *LookupCache) Get(ctx context.Context, kind, barcode string) (*lookup.Result, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis client not initialized")
	}

	data, err := c.client.Get(ctx, lookupKey(kind, barcode)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached lookup: %w", err)
	}

	var result lookup.Result
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached lookup: %w", err)
	}
	return &result, nil
}

// Set stores a resolution result under the (kind, barcode) key.
func (c *LookupCache) Set(ctx context.Context, kind, barcode string, result *lookup.Result) error {
	if c.client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal lookup result: %w", err)
	}

	if err := c.client.Set(ctx, lookupKey(kind, barcode), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache lookup result: %w", err)
	}
	return nil
}
