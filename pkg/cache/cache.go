// Package cache stores rendered operation results between CLI runs.
//
// Keys are derived from the content hash of every input definition plus the
// operation name, so editing a definition file naturally invalidates its
// entries. [FileCache] persists entries under the user cache directory and
// [NullCache] disables caching (--no-cache).
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long operation results stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiration.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	// Expired or corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// ResultKey identifies the result of applying op to the inputs,
	// given as content hashes in argument order.
	ResultKey(op string, inputs ...string) string
}

// DefaultKeyer produces unscoped keys of the form "result:<op>:<hash>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements [Keyer].
func (DefaultKeyer) ResultKey(op string, inputs ...string) string {
	return hashKey("result:"+op, inputs...)
}
