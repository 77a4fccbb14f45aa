// Package cache stores computed pi digit runs between invocations.
//
// Digit generation is the only expensive step of a poster run, and its
// output depends solely on the requested count, so results are safe to
// cache forever. The CLI uses a file-backed cache under the XDG cache
// directory; NullCache disables caching without branching at call sites.
package cache

import "context"

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
