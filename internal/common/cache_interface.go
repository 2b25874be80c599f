package common

import "time"

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// GetInto retrieves a value by key and decodes it into dest, which must
	// be a non-nil pointer. This is the lookup path for callers that need a
	// concrete type back: serializing backends (Redis) can only return the
	// generic JSON shape from Get. Returns true only when the key was found
	// and the value decoded into dest.
	GetInto(key string, dest interface{}) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
