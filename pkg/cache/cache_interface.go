package cache

import (
	"context"
	"time"
)

// Cache is the contract of the read-through cache used by repositories.
// Implementations: infrastructure/cache.RedisCache and Noop.
type Cache interface {
	// Get loads key into dest.
	// found = false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key for ttl. Strings and byte slices are stored
	// as is, anything else is JSON encoded.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}
