package interfaces

import (
	"context"
	"time"
)

// IIdempotencyStore reserves keys for in-flight operations (e.g. paying for an
// offer) so concurrent retries cannot run the same side effect twice.
type IIdempotencyStore interface {
	// Reserve returns ok=false when the key is already held. The token
	// identifies this reservation and must be passed back to Release.
	Reserve(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// Release drops the key only if it is still held under token; a
	// reservation that expired and was taken by someone else is left alone.
	Release(ctx context.Context, key, token string) error
}
