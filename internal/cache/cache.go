package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Get reads a cached value into dest. A nil client, a missing key and a
// redis error all report a miss; the caller falls through to the store.
func Get(ctx context.Context, rdb *redis.Client, key string, dest any) bool {
	if rdb == nil {
		return false
	}
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores a value with a TTL. Errors are ignored: the cache is an
// optimization, never a dependency.
func Set(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) {
	if rdb == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	rdb.Set(ctx, key, b, ttl)
}
