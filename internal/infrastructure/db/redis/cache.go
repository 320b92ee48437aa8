package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// RecordCache is a read-through JSON cache for by-id record lookups.
// Key format: hr:<collection>:<id>
type RecordCache struct {
	client *redis.Client
}

// NewRecordCache creates a RecordCache wrapping the given Redis client.
func NewRecordCache(client *redis.Client) *RecordCache {
	return &RecordCache{client: client}
}

// Get unmarshals the cached record into dest. found is false on a miss.
func (c *RecordCache) Get(ctx context.Context, collection string, id int64, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(collection, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// Set stores the record under its collection/id key (expires after cacheTTL).
func (c *RecordCache) Set(ctx context.Context, collection string, id int64, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(collection, id), raw, cacheTTL).Err()
}

// Invalidate drops the cached record after an update or delete.
func (c *RecordCache) Invalidate(ctx context.Context, collection string, id int64) error {
	return c.client.Del(ctx, c.key(collection, id)).Err()
}

func (c *RecordCache) key(collection string, id int64) string {
	return fmt.Sprintf("hr:%s:%d", collection, id)
}
