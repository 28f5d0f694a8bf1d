// Package cache provides the read-through cache the services put in
// front of provider calls. Two backends exist: an in-process TTL store
// and Redis for multi-instance deployments. Cached values are generic
// JSON documents, so both backends round-trip them identically.
package cache

import "context"

// Loader produces a value for a key on cache miss.
type Loader func(ctx context.Context) (any, error)

// Cache is a read-through cache with single-flight loads.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any)
	Delete(ctx context.Context, key string)
	GetOrLoad(ctx context.Context, key string, loader Loader) (any, error)
}
