package port

import (
	"context"
	"time"
)

type CacheRepository interface {
	// AcquireGuard sets key for ttl if absent, returns false if another holder has it
	AcquireGuard(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// ReleaseGuard drops a guard before its ttl runs out
	ReleaseGuard(ctx context.Context, key string) error

	// Get returns the cached value, ok false on miss
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete drops key
	Delete(ctx context.Context, key string) error
}
